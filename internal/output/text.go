// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"

	"naschgen/internal/engine"
)

// WriteText writes the simulator input format: seven header lines, a blank
// line, then "lane position velocity" per car in index order.
func WriteText(w io.Writer, st engine.State) error {
	bw := bufio.NewWriter(w)
	p := st.Params
	header := []string{
		strconv.Itoa(p.N),
		strconv.Itoa(p.L),
		strconv.Itoa(p.VMax),
		FormatProb(p.PDec),
		FormatProb(p.PStart),
		strconv.Itoa(p.Steps),
		FormatSeed(p),
		"",
	}
	for _, h := range header {
		if _, err := bw.WriteString(h + "\n"); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, 32)
	for _, c := range st.Cars {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(c.Lane), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.Position), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.Velocity), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
