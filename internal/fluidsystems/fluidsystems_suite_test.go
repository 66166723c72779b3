package fluidsystems_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFluidSystems(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FluidSystems Suite")
}
