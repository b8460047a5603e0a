package mytar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const (
	// maxBarWidth limits the progress bar size so that extremely wide
	// terminals don't allocate a huge bar. The actual width used is
	// calculated dynamically based on the terminal size and other
	// displayed information.
	maxBarWidth  = 60
	updatePeriod = time.Second / 4
)

// terminalFd returns the descriptor of w when it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

type progressData struct {
	out          io.Writer
	fd           int
	current      int64
	total        int64
	startTime    time.Time
	lastPrint    time.Time
	lastPrintStr string
	file         string
	now          func() time.Time
}

// newProgress returns nil when out is not a terminal; a nil *progressData is
// valid and does nothing.
func newProgress(out io.Writer, total int64) *progressData {
	fd, ok := terminalFd(out)
	if !ok {
		return nil
	}
	return &progressData{out: out, fd: fd, total: total, startTime: time.Now(), now: time.Now}
}

func (p *progressData) lineWidth() int {
	if w, _, err := term.GetSize(p.fd); err == nil && w > 0 {
		return w
	}
	return 80
}

func (p *progressData) setFile(name string) {
	if p == nil {
		return
	}
	p.file = name
}

// tick redraws the line if updatePeriod has passed since the last draw.
func (p *progressData) tick() {
	if p == nil {
		return
	}
	now := p.now()
	if now.Sub(p.lastPrint) < updatePeriod {
		return
	}
	p.lastPrint = now
	p.print(now)
}

func (p *progressData) print(now time.Time) {
	progress := 1.0
	if p.total > 0 {
		progress = float64(p.current) / float64(p.total)
		if progress > 1 {
			progress = 1
		}
	}

	var speed float64
	if elapsed := now.Sub(p.startTime).Seconds(); elapsed > 0 {
		speed = float64(p.current) / elapsed
	}

	info := fmt.Sprintf(" %3.2f%% %v/s %s", progress*100, humanize.Bytes(uint64(speed)), filepath.Base(p.file))
	barWidth := p.lineWidth() - len(info) - 2 // 2 for the surrounding []
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 0 {
		barWidth = 0
	}

	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	out := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]" + info

	// Print only if changed (reduce flicker)
	if out != p.lastPrintStr {
		fmt.Fprintf(p.out, "\r\033[K%s", out)
		p.lastPrintStr = out
	}
}

// finish clears the progress line so diagnostics start on a clean line.
func (p *progressData) finish() {
	if p == nil || p.lastPrintStr == "" {
		return
	}
	fmt.Fprint(p.out, "\r\033[K")
	p.lastPrintStr = ""
}
