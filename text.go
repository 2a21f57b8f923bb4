package seedling

// TextTarget displays a string.
type TextTarget interface {
	SetText(s string)
}

// DefaultTextFade is the default text fade duration in seconds.
const DefaultTextFade = 1.0

// TextPresenter manages the single on-screen text slot. Every operation
// preempts the one in flight, whatever its progress; nothing is queued.
type TextPresenter struct {
	Label Optional[TextTarget]
	Group Optional[AlphaTarget]

	FadeDuration float64

	sched   *Scheduler
	current *Handle
	text    string
	alpha   float64
}

// NewTextPresenter creates a presenter whose fire-and-forget operations run on s.
func NewTextPresenter(s *Scheduler) *TextPresenter {
	return &TextPresenter{sched: s, FadeDuration: DefaultTextFade}
}

// Init clears the text and makes it fully transparent.
func (p *TextPresenter) Init() {
	p.setAlpha(0)
	p.setText("")
}

// Reset cancels the in-flight operation and clears the slot at once.
func (p *TextPresenter) Reset() {
	p.current.Cancel()
	p.current = nil
	p.setAlpha(0)
	p.setText("")
}

// Text returns the displayed message.
func (p *TextPresenter) Text() string {
	return p.text
}

// Alpha returns the current text opacity.
func (p *TextPresenter) Alpha() float64 {
	return p.alpha
}

// Busy reports whether a show or hide is in flight.
func (p *TextPresenter) Busy() bool {
	return !p.current.Done()
}

// Show cancels any in-flight operation, sets message and fades it in. When
// displayTime is positive the message is held that long, then faded out and
// cleared.
func (p *TextPresenter) Show(message string, displayTime float64) {
	p.current.Cancel()
	steps := []Task{
		Do(func() { p.setText(message) }),
		p.fade(0, 1),
	}
	if displayTime > 0 {
		steps = append(steps, Wait(displayTime), p.fadeOut())
	}
	p.current = p.sched.Go(Sequence(steps...))
}

// Hide cancels any in-flight operation and fades the text out without
// waiting for it.
func (p *TextPresenter) Hide() {
	p.current.Cancel()
	p.current = p.sched.Go(p.fadeOut())
}

// HideAwait returns a task that hides the text like Hide and finishes when the
// fade-out completes. The fade is the presenter's in-flight operation while it
// runs, so a later Show preempts it and the awaiting task simply moves on.
func (p *TextPresenter) HideAwait() Task {
	return Defer(func() Task {
		p.current.Cancel()
		h := NewHandle(p.fadeOut())
		p.current = h
		return h
	})
}

func (p *TextPresenter) fade(from, to float64) Task {
	return NewTween(from, to, p.FadeDuration, p.setAlpha, nil)
}

func (p *TextPresenter) fadeOut() Task {
	return Sequence(p.fade(1, 0), Do(func() { p.setText("") }))
}

func (p *TextPresenter) setText(s string) {
	p.text = s
	p.Label.Do(func(t TextTarget) { t.SetText(s) })
}

func (p *TextPresenter) setAlpha(a float64) {
	p.alpha = a
	p.Group.Do(func(t AlphaTarget) { t.SetAlpha(a) })
}
