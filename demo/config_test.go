package demo_test

import (
	"code.cloudfoundry.org/demorunner/demo"
	"code.cloudfoundry.org/demorunner/diagnostics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VariantConfig", func() {
	DescribeTable("presets",
		func(variant string, expectedRepeat int) {
			config, err := demo.VariantConfig(variant)
			Expect(err).NotTo(HaveOccurred())

			Expect(config).To(Equal(demo.Config{
				WithEnvDump:           true,
				DiagnosticText:        diagnostics.DefaultText,
				DiagnosticRepeatCount: expectedRepeat,
				Workers:               5,
			}))
		},
		Entry("no variant", "", 1),
		Entry("single", demo.VariantSingle, 1),
		Entry("burst", demo.VariantBurst, 25),
	)

	It("rejects variants it does not know", func() {
		_, err := demo.VariantConfig("loud")
		Expect(err).To(MatchError("unknown variant: loud"))
	})
})
