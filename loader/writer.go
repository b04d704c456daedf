package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/minefield/core"
)

// Write emits g in the plain format. Floats use the shortest
// representation that parses back to the same value, so Write followed by
// Parse reproduces every mine exactly.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(g.Len()))
	bw.WriteByte('\n')

	buf := make([]byte, 0, 64)
	for _, n := range g.Nodes() {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, n.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, n.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, n.R, 'g', -1, 64)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return errors.Wrap(bw.Flush(), "write minefield")
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return errors.WithMessage(err, path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}
