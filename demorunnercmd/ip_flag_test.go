package demorunnercmd_test

import (
	"net"

	"code.cloudfoundry.org/demorunner/demorunnercmd"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IPFlag", func() {
	It("parses an IP address", func() {
		var f demorunnercmd.IPFlag
		Expect(f.UnmarshalFlag("127.0.0.1")).To(Succeed())
		Expect(f.IP().Equal(net.ParseIP("127.0.0.1"))).To(BeTrue())
	})

	It("rejects anything else", func() {
		var f demorunnercmd.IPFlag
		Expect(f.UnmarshalFlag("localhost")).To(MatchError("invalid IP: 'localhost'"))
	})

	It("is nil until set", func() {
		cmd := mustParse()
		Expect(cmd.Debug.BindIP).To(BeNil())
	})
})
