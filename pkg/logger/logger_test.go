package logger_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/logger"
)

var _ = Describe("Logger", func() {
	Describe("NewLoggerWithWriters", func() {
		It("writes structured fields", func() {
			var buf bytes.Buffer
			l := logger.NewLoggerWithWriters(false, &buf)
			l.Info("hello", zap.String("key", "value"))
			Expect(l.Sync()).To(Succeed())

			output := buf.String()
			Expect(output).To(ContainSubstring("hello"))
			Expect(output).To(ContainSubstring("key"))
			Expect(output).To(ContainSubstring("value"))
		})

		It("respects debug level", func() {
			var buf bytes.Buffer
			l := logger.NewLoggerWithWriters(true, &buf)
			l.Debug("debug msg")

			Expect(buf.String()).To(ContainSubstring("debug msg"))
		})

		It("filters debug when not enabled", func() {
			var buf bytes.Buffer
			l := logger.NewLoggerWithWriters(false, &buf)
			l.Debug("hidden")

			Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		})

		It("fans out to every writer", func() {
			var a, b bytes.Buffer
			l := logger.NewLoggerWithWriters(false, &a, &b)
			l.Warn("both")

			Expect(a.String()).To(ContainSubstring("both"))
			Expect(b.String()).To(ContainSubstring("both"))
		})
	})

	Describe("NewFileLogger", func() {
		It("appends to the log file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "logs", "recruit.log")

			l, closeFn, err := logger.NewFileLogger(false, path)
			Expect(err).NotTo(HaveOccurred())
			l.Info("first")
			Expect(closeFn()).To(Succeed())

			l, closeFn, err = logger.NewFileLogger(false, path)
			Expect(err).NotTo(HaveOccurred())
			l.Info("second")
			Expect(closeFn()).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("first"))
			Expect(string(data)).To(ContainSubstring("second"))
			Expect(string(data)).To(ContainSubstring("INFO"))
		})
	})
})
