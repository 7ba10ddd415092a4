package output_test

import (
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"trunc/pkg/output"
)

var _ = Describe("TruncateLine", func() {
	Context("Kurze Zeilen", func() {
		It("sollte kurze Zeilen unverändert lassen", func() {
			Expect(output.TruncateLine("hello world", 100)).To(Equal("hello world"))
		})

		It("sollte Zeilen mit genau 2*width Zeichen unverändert lassen", func() {
			line := strings.Repeat("x", 200)
			Expect(output.TruncateLine(line, 100)).To(Equal(line))
		})

		It("sollte leere Zeilen unverändert lassen", func() {
			Expect(output.TruncateLine("", 100)).To(Equal(""))
		})
	})

	Context("width = 0", func() {
		It("sollte nie kürzen", func() {
			line := strings.Repeat("x", 10000)
			Expect(output.TruncateLine(line, 0)).To(Equal(line))
		})
	})

	Context("Lange Zeilen", func() {
		It("sollte Anfang und Ende behalten und die entfernten Zeichen zählen", func() {
			line := strings.Repeat("a", 100) + strings.Repeat("m", 500) + strings.Repeat("z", 100)
			result := output.TruncateLine(line, 100)

			Expect(result).To(Equal(strings.Repeat("a", 100) + "[... 500 chars ...]" + strings.Repeat("z", 100)))
		})

		It("sollte eine eigene Breite respektieren", func() {
			line := strings.Repeat("x", 100)
			result := output.TruncateLine(line, 20)

			Expect(result).To(ContainSubstring("[... 60 chars ...]"))
			Expect(utf8.RuneCountInString(result)).To(Equal(20 + 18 + 20))
		})
	})

	Context("Marker spart keinen Platz", func() {
		It("sollte eine 201-Zeichen-Zeile nicht kürzen", func() {
			line := strings.Repeat("x", 201)
			Expect(output.TruncateLine(line, 100)).To(Equal(line))
		})

		It("sollte nicht kürzen wenn das Ergebnis gleich lang wäre", func() {
			// 218 Zeichen: 100 + "[... 18 chars ...]" (18) + 100 = 218
			line := strings.Repeat("x", 218)
			Expect(output.TruncateLine(line, 100)).To(Equal(line))
		})

		It("sollte kürzen sobald ein Zeichen gespart wird", func() {
			line := strings.Repeat("x", 219)
			result := output.TruncateLine(line, 100)
			Expect(result).To(ContainSubstring("[... 19 chars ...]"))
			Expect(utf8.RuneCountInString(result)).To(Equal(218))
		})

		It("sollte nie länger als das Original werden", func() {
			for n := 0; n <= 400; n++ {
				for _, width := range []int{0, 1, 5, 10, 50, 100} {
					line := strings.Repeat("y", n)
					result := output.TruncateLine(line, width)
					Expect(utf8.RuneCountInString(result)).To(BeNumerically("<=", n))
					if strings.Contains(result, "[...") {
						Expect(utf8.RuneCountInString(result)).To(BeNumerically("<", n))
					}
				}
			}
		})
	})

	Context("Unicode", func() {
		It("sollte Zeichen statt Bytes zählen", func() {
			line := strings.Repeat("🦀", 300)
			result := output.TruncateLine(line, 100)

			Expect(result).To(ContainSubstring("[... 100 chars ...]"))
			Expect(utf8.ValidString(result)).To(BeTrue())
			Expect(strings.HasPrefix(result, strings.Repeat("🦀", 100)+"[")).To(BeTrue())
			Expect(strings.HasSuffix(result, "]"+strings.Repeat("🦀", 100))).To(BeTrue())
		})

		It("sollte ungültige UTF-8-Bytes in Anfang und Ende unverändert lassen", func() {
			line := "\xff" + strings.Repeat("a", 300) + "\xfe"
			result := output.TruncateLine(line, 100)

			Expect(result).To(Equal("\xff" + strings.Repeat("a", 99) + "[... 102 chars ...]" + strings.Repeat("a", 99) + "\xfe"))
			Expect(result).NotTo(ContainSubstring("\uFFFD"))
		})

		It("sollte Mehrbyte-Schriften nicht zerteilen", func() {
			line := strings.Repeat("日本語", 100)
			result := output.TruncateLine(line, 10)

			Expect(utf8.ValidString(result)).To(BeTrue())
			Expect(result).To(HavePrefix("日本語日本語日本語日"))
			Expect(result).To(ContainSubstring("[... 280 chars ...]"))
		})
	})
})
