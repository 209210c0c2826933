package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/core"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/lifecycle"
)

var (
	styleTaskbar = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	styleAlive   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	stylePopup   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleDebug   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// putStr writes s at x,y clipped to the screen
func putStr(s tcell.Screen, x, y int, str string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= 0 && x < w {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// fill paints r with spaces in style, clipped to the screen
func fill(s tcell.Screen, r core.Rect, style tcell.Style) {
	w, h := s.Size()
	r = r.Intersect(core.NewRect(0, 0, w, h))
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// box fills r and writes lines inside a one-cell left margin
func box(s tcell.Screen, r core.Rect, lines []string, style tcell.Style) {
	fill(s, r, style)
	for i, line := range lines {
		if r.Top+i >= r.Bottom {
			return
		}
		putStr(s, r.Left+1, r.Top+i, line, style)
	}
}

// wrapWords splits text at spaces into lines of at most width runes
// A single word longer than width gets its own line
func wrapWords(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func drawTaskbar(s tcell.Screen, a anchor.Anchor) {
	if a.Rect.Empty() {
		return
	}
	fill(s, a.Rect, styleTaskbar)
	if a.Edge == anchor.EdgeBottom || a.Edge == anchor.EdgeTop {
		putStr(s, a.Rect.Left+1, a.Rect.Top, "vi-pet", styleTaskbar)
	}
}

func drawSprite(s tcell.Screen, snap engine.Snapshot, l Layout) {
	alive := snap.Life == lifecycle.Alive
	style := styleAlive
	if !alive {
		style = styleDead
	}
	if snap.Hovering {
		style = style.Bold(true)
	}

	sp := l.Sprite
	rows := spriteRows(alive, snap.Frame)
	for i := 0; i < sp.Height()-1 && i < len(rows); i++ {
		line := rows[i]
		if len(line) > sp.Width() {
			line = line[:sp.Width()]
		}
		putStr(s, sp.Left, sp.Top+i, line, style)
	}

	if len(l.Buttons) == 0 {
		for x := sp.Left; x < sp.Right; x++ {
			putStr(s, x, sp.Bottom-1, string(groundRune), style)
		}
		return
	}
	for _, b := range l.Buttons {
		putStr(s, b.Rect.Left, b.Rect.Top, b.Label, styleButton)
	}
}

func drawPopup(s tcell.Screen, snap engine.Snapshot, l Layout) {
	if l.Popup.Empty() {
		return
	}
	n := snap.Needs
	title := fmt.Sprintf("alive %ds", int64(snap.Age.Seconds()))
	if snap.Life == lifecycle.Dead {
		title = fmt.Sprintf("dead, lived %ds", int64(snap.Age.Seconds()))
	}
	box(s, l.Popup, []string{
		title,
		fmt.Sprintf("Hunger  [%s] %d/%d", Bar(n.Hunger, n.MaxHunger, barWidth), n.Hunger, n.MaxHunger),
		fmt.Sprintf("Lonely  [%s] %d/%d", Bar(n.Loneliness, n.MaxLoneliness, barWidth), n.Loneliness, n.MaxLoneliness),
	}, stylePopup)
}

// noticeText is the one-shot death notification
func noticeText(span lifecycle.Lifespan) string {
	return fmt.Sprintf("Your pet died after %d seconds", int64(span.Duration.Round(time.Second).Seconds()))
}

func drawNotice(s tcell.Screen, span lifecycle.Lifespan) {
	w, h := s.Size()
	msg := noticeText(span)
	hint := "press any key"
	bw := max(len(msg), len(hint)) + 2
	r := core.NewRect((w-bw)/2, h/2-1, bw, 2)
	box(s, r, []string{msg, hint}, styleNotice)
}

// statsLines is the settings view body
func statsLines(log *lifecycle.LifespanLog) []string {
	secs := log.Seconds()
	lines := make([]string, 0, len(secs)+1)
	lines = append(lines, fmt.Sprintf("Pets died: %d", len(secs)))
	for i, sec := range secs {
		lines = append(lines, fmt.Sprintf("Pet %d: %d seconds", i+1, sec))
	}
	return lines
}

func drawStats(s tcell.Screen, log *lifecycle.LifespanLog, area core.Rect) {
	lines := statsLines(log)
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	height := min(len(lines), area.Height())
	box(s, core.NewRect(area.Left, area.Top, width+2, height), lines, stylePanel)
}
