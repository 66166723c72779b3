package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/probe"
	"github.com/san-kum/fluidstate/internal/registry"
)

func snapshotCmd(t *testing.T) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		configFile, preset, temperature = "", "", 0
	})
	cmd := &cobra.Command{Use: "query"}
	addSnapshotFlags(cmd)
	return cmd
}

func TestQuery_SeveralSystems(t *testing.T) {
	g := NewWithT(t)
	cmd := snapshotCmd(t)

	systems := []string{"two_phase", "ideal_gas", "water_air"}
	states, err := buildStates(cmd, registry.NewRegistry(), systems)
	g.Expect(err).NotTo(HaveOccurred())

	reports := probe.ProbeAll(states)
	g.Expect(reports).To(HaveLen(len(systems)))
	for i, r := range reports {
		g.Expect(r.Name).To(Equal(systems[i]))
	}

	missing := missingQueries(reports)
	g.Expect(missing).NotTo(HaveKey("water_air"))
	g.Expect(missing).To(HaveKeyWithValue("ideal_gas", []string{fluidstate.OpSaturation}))
	g.Expect(missing["two_phase"]).To(ContainElement(fluidstate.OpDensity))
}

func TestQuery_DefaultSystem(t *testing.T) {
	g := NewWithT(t)

	states, err := buildStates(snapshotCmd(t), registry.NewRegistry(), nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(states).To(HaveLen(1))
	g.Expect(states[0].Name).To(Equal("water_air"))
}

func TestLoadSnapshot_ConfigOverPreset(t *testing.T) {
	g := NewWithT(t)
	cmd := snapshotCmd(t)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	g.Expect(os.WriteFile(path, []byte("temperature: 330\n"), 0644)).To(Succeed())
	preset, configFile = "deep", path

	cfg, err := loadSnapshot(cmd, "water_air")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Temperature).To(Equal(330.0))
	g.Expect(cfg.Phases).To(HaveLen(2))
	g.Expect(cfg.Phases[0].Pressure).To(Equal(1.5e6))

	_, err = registry.NewRegistry().Build(cfg)
	g.Expect(err).NotTo(HaveOccurred())
}

func TestLoadSnapshot_TemperatureFlagWins(t *testing.T) {
	g := NewWithT(t)
	cmd := snapshotCmd(t)

	preset = "flue"
	g.Expect(cmd.Flags().Set("temperature", "500")).To(Succeed())

	cfg, err := loadSnapshot(cmd, "ideal_gas")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Temperature).To(Equal(500.0))
}

func TestLoadSnapshot_Errors(t *testing.T) {
	g := NewWithT(t)
	cmd := snapshotCmd(t)

	preset = "missing"
	_, err := loadSnapshot(cmd, "water_air")
	g.Expect(err).To(MatchError(ContainSubstring("unknown preset")))

	preset = ""
	_, err = loadSnapshot(cmd, "two_phase_compositional")
	g.Expect(err).To(MatchError(ContainSubstring("no snapshot")))
}
