package boss

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/common"
)

// TelegraphAlpha is the fill opacity for a charge that is progress of the way
// through its prepare time.
func TelegraphAlpha(progress float64) float64 {
	return common.Lerp(TelegraphAlphaStart, TelegraphAlphaEnd, common.Clamp01(progress))
}

func (e *Encounter) createTelegraph(origin, dir cp.Vector) {
	e.destroyTelegraph()
	if e.deps.Telegraphs == nil {
		return
	}
	e.telegraph = e.deps.Telegraphs.CreateTelegraph(origin, dir)
	if e.telegraph != nil {
		e.telegraph.SetAlpha(TelegraphAlphaStart)
	}
}

func (e *Encounter) destroyTelegraph() {
	if e.telegraph == nil {
		return
	}
	t := e.telegraph
	e.telegraph = nil
	t.Destroy()
}

// HasTelegraph reports whether a charge telegraph is currently alive.
func (e *Encounter) HasTelegraph() bool {
	return e != nil && e.telegraph != nil
}
