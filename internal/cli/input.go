// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeserve/internal/utils"
	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/session"
	"github.com/bastiangx/codeserve/pkg/snippet"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

// Options holds the CLI settings taken from flags and the [cli] config section.
type Options struct {
	Language     lang.ID
	ShowDocs     bool
	MaxFileBytes int64
	Session      session.Options
}

// InputHandler reads commands and prefixes line by line and prints the
// popup a completion would open. Accepting an item edits the working line.
type InputHandler struct {
	completer suggest.ICompleter
	ctrl      *session.Controller
	opts      Options

	in  io.Reader
	out io.Writer
	st  styles
	now func() time.Time

	buffer   string // text loaded with :file
	line     string // working line, the last typed word after edits
	requests int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, opts Options, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		completer: completer,
		ctrl:      session.NewController(completer, opts.Session),
		opts:      opts,
		in:        in,
		out:       out,
		st:        newStyles(out),
		now:       time.Now,
	}
}

// Start begins the interface loop. It returns nil on :quit or end of input.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, h.st.title.Render("CodeServe CLI [BETA]"))
	fmt.Fprintln(h.out, h.st.muted.Render("type a prefix and press Enter, :help for commands"))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, h.st.prompt.Render(h.opts.Language.String()+"> "))
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if quit := h.handleInput(input); quit {
			return nil
		}
	}
}

// handleInput runs one line. It reports whether the loop should stop.
func (h *InputHandler) handleInput(input string) bool {
	if !strings.HasPrefix(input, ":") || input == ":" {
		h.complete(input)
		return false
	}

	cmd, arg, _ := strings.Cut(input[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		h.printHelp()
	case "lang":
		h.setLanguage(arg)
	case "file":
		h.loadFile(arg)
	case "doc":
		h.printDoc(arg)
	case "expand":
		h.printExpansion(arg)
	case "down", "up", "pgdown", "pgup", "accept", "tab", "dismiss":
		h.key(cmd)
	default:
		h.errorf("unknown command :%s", cmd)
	}
	return false
}

// complete triggers a popup for prefix typed at the end of the loaded buffer.
func (h *InputHandler) complete(prefix string) {
	h.requests++
	h.line = prefix

	text := prefix
	if h.buffer != "" {
		text = h.buffer + "\n" + prefix
	}

	start := h.now()
	popup, ok := h.ctrl.Trigger(session.Document{Text: text, Cursor: len(text), Language: h.opts.Language}, start)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)
	if !ok {
		if h.ctrl.Open() {
			h.warnf("busy, finish the open popup first")
			return
		}
		h.warnf("no suggestions for '%s'", prefix)
		return
	}
	h.printPopup(popup)
}

var keyNames = map[string]session.Key{
	"down":    session.KeyDown,
	"up":      session.KeyUp,
	"pgdown":  session.KeyPageDown,
	"pgup":    session.KeyPageUp,
	"accept":  session.KeyEnter,
	"tab":     session.KeyTab,
	"dismiss": session.KeyEscape,
}

func (h *InputHandler) key(name string) {
	if !h.ctrl.Open() {
		h.warnf("no open popup")
		return
	}
	res := h.ctrl.HandleKey(keyNames[name])
	switch {
	case res.Edit != nil:
		// The edit is relative to buffer + "\n" + line; only the line is shown.
		offset := 0
		if h.buffer != "" {
			offset = len(h.buffer) + 1
		}
		edit := *res.Edit
		edit.Start -= offset
		edit.End -= offset
		h.line, _ = edit.ApplyTo(h.line)
		fmt.Fprintln(h.out, h.st.accent.Render(h.line))
	case res.Closed:
		fmt.Fprintln(h.out, h.st.muted.Render("dismissed"))
	default:
		h.printPopup(h.ctrl.Popup())
	}
}

func (h *InputHandler) setLanguage(name string) {
	if name == "" {
		names := make([]string, 0, len(lang.All()))
		for _, id := range lang.All() {
			names = append(names, id.String())
		}
		fmt.Fprintf(h.out, "current: %s\navailable: %s\n", h.st.accent.Render(h.opts.Language.String()), strings.Join(names, ", "))
		return
	}
	h.opts.Language = lang.Parse(name)
	h.ctrl.Dismiss()
	fmt.Fprintf(h.out, "language set to %s\n", h.st.accent.Render(h.opts.Language.String()))
}

func (h *InputHandler) loadFile(path string) {
	if path == "" {
		h.errorf("usage: :file <path>")
		return
	}
	text, err := utils.ReadTextFile(path, h.opts.MaxFileBytes)
	if err != nil {
		h.errorf("%v", err)
		return
	}
	h.buffer = text
	if id := lang.Detect(path); id != lang.Generic {
		h.opts.Language = id
	}
	h.ctrl.Dismiss()
	fmt.Fprintf(h.out, "loaded %s bytes, language %s\n",
		utils.FormatCount(len(text)), h.st.accent.Render(h.opts.Language.String()))
}

func (h *InputHandler) printDoc(keyword string) {
	if keyword == "" {
		h.errorf("usage: :doc <keyword>")
		return
	}
	fmt.Fprintf(h.out, "%s  %s\n", h.st.label.Render(keyword), lang.Describe(h.opts.Language, keyword))
}

func (h *InputHandler) printExpansion(template string) {
	exp := snippet.Parse(template)
	fmt.Fprintln(h.out, exp.Text)
	for _, st := range exp.Stops {
		fmt.Fprintln(h.out, h.st.muted.Render(fmt.Sprintf("  $%d [%d:%d] %q", st.Index, st.Start, st.End, exp.Text[st.Start:st.End])))
	}
}

func (h *InputHandler) printPopup(p *session.Popup) {
	if p == nil {
		return
	}
	fmt.Fprintf(h.out, "Found %d suggestions for '%s':\n", len(p.Items), p.Request.Prefix)
	width := labelWidth(p.Items)
	for i, it := range p.Items {
		fmt.Fprintln(h.out, h.st.row(i, it, width, i == p.Selected, h.opts.ShowDocs))
	}
}

func (h *InputHandler) printHelp() {
	for _, line := range [][2]string{
		{"<prefix>", "complete prefix in the current language"},
		{":down :up :pgdown :pgup", "move the selection"},
		{":accept :tab", "insert the selected item"},
		{":dismiss", "close the popup"},
		{":lang [name]", "show or set the language"},
		{":file <path>", "load a buffer and detect its language"},
		{":doc <keyword>", "show keyword documentation"},
		{":expand <template>", "expand a snippet template"},
		{":quit", "exit"},
	} {
		fmt.Fprintf(h.out, "  %s  %s\n", h.st.label.Render(padRight(line[0], 26)), line[1])
	}
}

func (h *InputHandler) warnf(format string, args ...any) {
	fmt.Fprintln(h.out, h.st.warn.Render(fmt.Sprintf(format, args...)))
}

func (h *InputHandler) errorf(format string, args ...any) {
	fmt.Fprintln(h.out, h.st.err.Render("error: "+fmt.Sprintf(format, args...)))
}
