package taylor_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTaylorSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "taylor driver scenario suite")
}
