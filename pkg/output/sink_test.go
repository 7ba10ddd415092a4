package output_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"trunc/pkg/output"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

var _ = Describe("Writer", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("sollte erst nach Flush sichtbar werden", func() {
		w := output.NewWriter(buf, false)
		Expect(w.Line("line 1")).To(Succeed())
		Expect(buf.Len()).To(Equal(0))

		Expect(w.Flush()).To(Succeed())
		Expect(buf.String()).To(Equal("line 1\n"))
	})

	It("sollte Marker ohne Farbe byte-genau schreiben", func() {
		w := output.NewWriter(buf, false)
		Expect(w.Line("line 1")).To(Succeed())
		Expect(w.Marker("[... 80 lines truncated ...]")).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		Expect(buf.String()).To(Equal("line 1\n[... 80 lines truncated ...]\n"))
	})

	It("sollte Marker im Terminal abgeschwächt darstellen", func() {
		w := output.NewWriter(buf, true)
		Expect(w.Marker("[... 1 lines truncated ...]")).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("\x1b[2m"))
		Expect(buf.String()).To(ContainSubstring("[... 1 lines truncated ...]"))
	})

	It("sollte Datenzeilen nie einfärben", func() {
		w := output.NewWriter(buf, true)
		Expect(w.Line("plain")).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		Expect(buf.String()).To(Equal("plain\n"))
	})

	It("sollte Schreibfehler beim Flush melden", func() {
		w := output.NewWriter(failingWriter{}, false)
		Expect(w.Line("line 1")).To(Succeed())
		Expect(w.Flush()).To(MatchError(ContainSubstring("broken pipe")))
	})
})
