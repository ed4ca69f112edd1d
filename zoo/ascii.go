package zoo

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-world/model"
)

// ReadASCII decodes a grid from the ASCII format: a "<width> <height>" header
// line followed by height lines of width ' ' (dead) or '#' (alive) characters.
func ReadASCII(r io.Reader) (*model.Grid, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, errors.Wrap(err, "[ReadASCII] header")
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, errors.Wrapf(ErrMalformed, "[ReadASCII] header %q", header)
	}
	width, errW := strconv.Atoi(fields[0])
	height, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrMalformed, "[ReadASCII] header %q", header)
	}
	if width > 0 && height > math.MaxInt/width {
		return nil, errors.Wrapf(ErrMalformed, "[ReadASCII] size %dx%d overflows", width, height)
	}

	// grows with the rows actually read, the header alone is not trusted
	var cells []model.Cell
	for y := range height {
		line, err := readLine(br)
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadASCII] row %d", y)
		}
		if len(line) != width {
			return nil, errors.Wrapf(ErrMalformed, "[ReadASCII] row %d has %d cells, want %d", y, len(line), width)
		}
		for x := range width {
			c, err := model.ParseCell(line[x])
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "[ReadASCII] cell (%d,%d): %v", x, y, err)
			}
			cells = append(cells, c)
		}
	}

	return model.MakeGrid(width, height, cells)
}

// readLine reads one line without its "\n" or "\r\n" terminator. A final line
// without a terminator is accepted, a missing line is ErrMalformed.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.Wrap(ErrMalformed, "unexpected end of file")
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// WriteASCII encodes g in the ASCII format
func WriteASCII(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(g.Width()) + " " + strconv.Itoa(g.Height()) + "\n"); err != nil {
		return errors.Wrap(err, "[WriteASCII] header")
	}

	cells := g.Cells()
	for y := range g.Height() {
		for _, c := range cells[y*g.Width() : (y+1)*g.Width()] {
			_ = bw.WriteByte(c.Char())
		}
		_ = bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[WriteASCII] flush")
}

// LoadASCII reads an ASCII grid file
func LoadASCII(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadASCII] failed to open file: %+v", path)
	}
	defer f.Close()

	g, err := ReadASCII(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadASCII] failed to decode file: %+v", path)
	}
	return g, nil
}

// SaveASCII writes g to an ASCII grid file
func SaveASCII(path string, g *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveASCII] failed to create file: %+v", path)
	}
	if err = WriteASCII(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "[SaveASCII] failed to encode file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[SaveASCII] failed to close file: %+v", path)
}
