package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
)

func writeCSV(f *os.File, p Payload) error {
	w := csv.NewWriter(f)
	if err := w.Write(p.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range p.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// writePDF emits a single-page document listing the section title and one
// line per row. Offsets are computed as objects are appended so the xref
// table stays valid.
func writePDF(f *os.File, p Payload) error {
	lines := []string{p.Section}
	for _, row := range p.Rows {
		lines = append(lines, strings.Join(row, "  "))
	}

	var content bytes.Buffer
	content.WriteString("BT /F1 10 Tf 50 780 Td 14 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDF(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func escapePDF(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}

// writePNG renders a placeholder chart image: a band per row over a plain
// background. A real implementation would rasterize the rendered view.
func writePNG(f *os.File, p Payload) error {
	const w, h = 800, 400
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := color.RGBA{R: 245, G: 246, B: 248, A: 255}
	band := color.RGBA{R: 66, G: 103, B: 178, A: 255}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}

	rows := len(p.Rows)
	if rows > 12 {
		rows = 12
	}
	for i := 0; i < rows; i++ {
		top := 40 + i*28
		for y := top; y < top+18 && y < h; y++ {
			for x := 40; x < w-40; x++ {
				img.Set(x, y, band)
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
