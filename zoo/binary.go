package zoo

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-world/model"
)

// ReadBinary decodes a grid from the packed format: little-endian int32 width
// and height, then width*height row-major bits, least significant bit first,
// zero padded to a whole byte.
func ReadBinary(r io.Reader) (*model.Grid, error) {
	var dims [2]int32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.Wrap(ErrMalformed, "[ReadBinary] truncated header")
		}
		return nil, errors.Wrap(err, "[ReadBinary] header")
	}
	width, height := int(dims[0]), int(dims[1])
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrMalformed, "[ReadBinary] size %dx%d", width, height)
	}

	packed, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[ReadBinary] cells")
	}
	total := width * height
	if len(packed)*8 < total {
		return nil, errors.Wrapf(ErrMalformed, "[ReadBinary] %d bits for %d cells", len(packed)*8, total)
	}

	cells := make([]model.Cell, total)
	for i := range cells {
		if packed[i/8]&(1<<(i%8)) != 0 {
			cells[i] = model.Alive
		}
	}
	return model.MakeGrid(width, height, cells)
}

// WriteBinary encodes g in the packed binary format
func WriteBinary(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	dims := [2]int32{int32(g.Width()), int32(g.Height())}
	if err := binary.Write(bw, binary.LittleEndian, dims); err != nil {
		return errors.Wrap(err, "[WriteBinary] header")
	}

	cells := g.Cells()
	packed := make([]byte, (len(cells)+7)/8)
	for i, c := range cells {
		if c.IsAlive() {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	if _, err := bw.Write(packed); err != nil {
		return errors.Wrap(err, "[WriteBinary] cells")
	}
	return errors.Wrap(bw.Flush(), "[WriteBinary] flush")
}

// LoadBinary reads a packed binary grid file
func LoadBinary(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBinary] failed to open file: %+v", path)
	}
	defer f.Close()

	g, err := ReadBinary(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBinary] failed to decode file: %+v", path)
	}
	return g, nil
}

// SaveBinary writes g to a packed binary grid file
func SaveBinary(path string, g *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveBinary] failed to create file: %+v", path)
	}
	if err = WriteBinary(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "[SaveBinary] failed to encode file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[SaveBinary] failed to close file: %+v", path)
}
