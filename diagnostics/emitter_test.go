package diagnostics_test

import (
	"errors"
	"strings"

	"code.cloudfoundry.org/demorunner/diagnostics"
	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type brokenStderr struct {
	writes int
}

func (b *brokenStderr) Write(p []byte) (int, error) {
	b.writes++
	if b.writes > 2 {
		return 0, errors.New("closed")
	}
	return len(p), nil
}

var _ = Describe("Emitter", func() {
	var (
		stderr  *gbytes.Buffer
		emitter *diagnostics.Emitter
	)

	BeforeEach(func() {
		stderr = gbytes.NewBuffer()
		emitter = &diagnostics.Emitter{
			Stderr: stderr,
			Text:   diagnostics.DefaultText,
			Repeat: diagnostics.DefaultRepeat,
		}
	})

	lines := func() []string {
		return strings.Split(strings.TrimSuffix(string(stderr.Contents()), "\n"), "\n")
	}

	It("writes the literal once by default", func() {
		Expect(emitter.Emit()).To(Succeed())
		Expect(string(stderr.Contents())).To(Equal("abcdefghijklmopqrstuvwxyz\n"))
	})

	Context("when configured for a burst", func() {
		BeforeEach(func() {
			emitter.Repeat = diagnostics.BurstRepeat
		})

		It("writes exactly 25 lines, each equal to the literal", func() {
			Expect(emitter.Emit()).To(Succeed())
			Expect(lines()).To(HaveLen(25))
			for _, line := range lines() {
				Expect(line).To(Equal("abcdefghijklmopqrstuvwxyz"))
			}
		})
	})

	Context("when the literal has no trailing newline", func() {
		BeforeEach(func() {
			emitter.Text = "hello from stderr"
			emitter.Repeat = 3
		})

		It("terminates each occurrence", func() {
			Expect(emitter.Emit()).To(Succeed())
			Expect(string(stderr.Contents())).To(Equal("hello from stderr\nhello from stderr\nhello from stderr\n"))
		})
	})

	Context("when the repeat count is zero", func() {
		BeforeEach(func() {
			emitter.Repeat = 0
		})

		It("writes nothing", func() {
			Expect(emitter.Emit()).To(Succeed())
			Expect(stderr.Contents()).To(BeEmpty())
		})
	})

	Context("when stderr fails part way through", func() {
		It("stops and returns the error", func() {
			broken := &brokenStderr{}
			emitter.Stderr = broken
			emitter.Repeat = 5

			Expect(emitter.Emit()).To(MatchError("writing diagnostic line 2: closed"))
			Expect(broken.writes).To(Equal(3))
		})
	})
})
