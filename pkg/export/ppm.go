package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// MaxPPMPixels bounds the pixel count ReadPPM will allocate for
const MaxPPMPixels = 1 << 26

// PPMHeader returns the netpbm header for a binary (P6) or ASCII (P3) image
func PPMHeader(width, height int, binary bool) string {
	magic := "P3"
	if binary {
		magic = "P6"
	}
	return fmt.Sprintf("%s\n%d %d\n255\n", magic, width, height)
}

// WritePPM writes img as a netpbm pixmap. Binary output is the header
// followed by exactly 3*Width*Height bytes; ASCII output writes one image
// row per line.
func WritePPM(w io.Writer, img *renderer.Image, binary bool) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(PPMHeader(img.Width, img.Height, binary)); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	if binary {
		if _, err := bw.Write(img.Bytes()); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	} else {
		line := make([]byte, 0, img.Width*12)
		for y := 0; y < img.Height; y++ {
			line = line[:0]
			for x := 0; x < img.Width; x++ {
				p := img.At(x, y)
				if x > 0 {
					line = append(line, ' ')
				}
				line = strconv.AppendUint(line, uint64(p[0]), 10)
				line = append(line, ' ')
				line = strconv.AppendUint(line, uint64(p[1]), 10)
				line = append(line, ' ')
				line = strconv.AppendUint(line, uint64(p[2]), 10)
			}
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("failed to write PPM row %d: %w", y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}

// ReadPPM decodes a P3 or P6 pixmap with a maximum value of 255.
// Comment lines in the header are skipped.
func ReadPPM(r io.Reader) (*renderer.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM magic: %w", err)
	}
	if magic != "P6" && magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	var dims [3]int
	for i, name := range []string{"width", "height", "max value"} {
		tok, err := readToken(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read PPM %s: %w", name, err)
		}
		if dims[i], err = strconv.Atoi(tok); err != nil || dims[i] <= 0 {
			return nil, fmt.Errorf("invalid PPM %s %q", name, tok)
		}
	}
	if dims[2] != 255 {
		return nil, fmt.Errorf("unsupported PPM max value %d", dims[2])
	}
	if dims[0] > MaxPPMPixels/dims[1] {
		return nil, fmt.Errorf("PPM dimensions %dx%d exceed %d pixels", dims[0], dims[1], MaxPPMPixels)
	}

	img := renderer.NewImage(dims[0], dims[1])
	if magic == "P6" {
		buf := make([]byte, 3*len(img.Pixels))
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("failed to read PPM pixels: %w", err)
		}
		for i := range img.Pixels {
			img.Pixels[i] = renderer.RGB{buf[3*i], buf[3*i+1], buf[3*i+2]}
		}
		return img, nil
	}

	for i := range img.Pixels {
		for c := 0; c < 3; c++ {
			tok, err := readToken(br)
			if err != nil {
				return nil, fmt.Errorf("failed to read PPM pixel %d: %w", i, err)
			}
			v, err := strconv.ParseUint(tok, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid PPM sample %q: %w", tok, err)
			}
			img.Pixels[i][c] = uint8(v)
		}
	}
	return img, nil
}

// readToken returns the next whitespace-delimited token, skipping comments.
// It consumes exactly one whitespace byte after the token, as P6 requires.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
