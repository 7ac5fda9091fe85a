package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("demorunner", func() {
	var (
		args    []string
		env     []string
		session *gexec.Session
		started time.Time
	)

	BeforeEach(func() {
		args = []string{}
		env = []string{"DEMORUNNER_MARKER=present", "PATH=/usr/bin:/bin"}
	})

	JustBeforeEach(func() {
		cmd := exec.Command(demorunnerBinPath, args...)
		cmd.Env = env

		var err error
		started = time.Now()
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		session.Kill()
	})

	stderrLines := func() []string {
		return strings.Split(strings.TrimSuffix(string(session.Err.Contents()), "\n"), "\n")
	}

	It("dumps the environment, emits one diagnostic line, joins five workers and exits 1", func() {
		Eventually(session, 10*time.Second).Should(gexec.Exit(1))
		Expect(time.Since(started)).To(BeNumerically(">=", 4500*time.Millisecond))

		output := string(session.Out.Contents())
		Expect(output).To(HavePrefix("DEMORUNNER_MARKER=present\nPATH=/usr/bin:/bin\n"))
		for _, millis := range []string{"500", "1500", "2500", "3500", "4500"} {
			Expect(strings.Count(output, "from thread sleep "+millis+"\n")).To(Equal(1))
		}

		Expect(stderrLines()).To(Equal([]string{"abcdefghijklmopqrstuvwxyz"}))
	})

	It("does not exit before the longest worker has slept", func() {
		Eventually(session.Out).Should(gbytes.Say("from thread sleep 4500"))
		Consistently(session, 3*time.Second).ShouldNot(gexec.Exit())
		Eventually(session, 5*time.Second).Should(gexec.Exit(1))
	})

	Context("with the burst variant", func() {
		BeforeEach(func() {
			args = []string{"--variant", "burst", "--workers", "0"}
		})

		It("writes 25 diagnostic lines", func() {
			Eventually(session).Should(gexec.Exit(1))

			Expect(stderrLines()).To(HaveLen(25))
			for _, line := range stderrLines() {
				Expect(line).To(Equal("abcdefghijklmopqrstuvwxyz"))
			}
		})
	})

	Context("when the environment dump is skipped and there are no workers", func() {
		BeforeEach(func() {
			args = []string{"--skip-env-dump", "--workers", "0"}
		})

		It("prints nothing to stdout and exits 1 straight away", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out.Contents()).To(BeEmpty())
		})
	})

	Context("when given arguments it does not understand", func() {
		BeforeEach(func() {
			args = []string{"--workers", "0", "--no-such-flag", "some", "positional", "args"}
		})

		It("ignores them", func() {
			Eventually(session).Should(gexec.Exit(1))
		})
	})

	Context("when the worker count is negative", func() {
		BeforeEach(func() {
			args = []string{"--workers=-1"}
		})

		It("exits 2", func() {
			Eventually(session).Should(gexec.Exit(2))
			Expect(session.Err).To(gbytes.Say("--workers must not be negative"))
		})
	})

	Context("when the log file cannot be created", func() {
		BeforeEach(func() {
			args = []string{"--workers", "0", "--log-file", "/non/existent/demorunner.log"}
		})

		It("exits 2", func() {
			Eventually(session).Should(gexec.Exit(2))
		})
	})

	Context("when asked for help", func() {
		BeforeEach(func() {
			args = []string{"--help"}
		})

		It("prints usage and exits 0", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("--workers"))
		})
	})

	Context("with a log file", func() {
		var logFile string

		BeforeEach(func() {
			logFile = filepath.Join(GinkgoT().TempDir(), "demorunner.log")
			args = []string{"--workers", "1", "--log-file", logFile}
		})

		It("writes the structured logs there and keeps them off stdout", func() {
			Eventually(session, 5*time.Second).Should(gexec.Exit(1))

			Expect(string(session.Out.Contents())).NotTo(ContainSubstring("demorunner.run"))

			logs, err := os.ReadFile(logFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(logs)).To(ContainSubstring(`"message":"demorunner.run.demo.completed"`))
		})
	})

	Describe("the --config flag", func() {
		var configFilePath string

		BeforeEach(func() {
			configFilePath = filepath.Join(GinkgoT().TempDir(), "demorunner.ini")
			Expect(os.WriteFile(configFilePath, []byte(`[Demo Configuration]
variant = burst
workers = 0
skip-env-dump = true
`), 0644)).To(Succeed())
			args = []string{"--config", configFilePath}
		})

		It("reads the demo configuration from the file", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(stderrLines()).To(HaveLen(25))
		})

		Context("and also passing flags on the command line", func() {
			BeforeEach(func() {
				args = append(args, "--diagnostic-repeat", "2")
			})

			It("lets the command line take precedence", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(stderrLines()).To(HaveLen(2))
			})
		})

		Context("when the config file is not a valid ini file", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configFilePath, []byte("invalid-ini-file"), 0644)).To(Succeed())
			})

			It("exits 2", func() {
				Eventually(session).Should(gexec.Exit(2))
			})
		})

		Context("when the config file does not exist", func() {
			BeforeEach(func() {
				args = []string{"--config", "/does/not/exist.ini"}
			})

			It("exits 2", func() {
				Eventually(session).Should(gexec.Exit(2))
			})
		})
	})
})
