package game

// cutsceneCharInterval is the typewriter speed in seconds per character.
const cutsceneCharInterval = 0.025

// cutsceneSkipDelay is how long a cutscene must run before SPACE skips it.
const cutsceneSkipDelay = 0.5

// Cutscene is a typewriter text box shown over the paused game.
type Cutscene struct {
	text      string
	shown     int
	charAccum float64
	elapsed   float64
	finished  bool
}

func NewCutscene(text string) *Cutscene {
	return &Cutscene{text: text}
}

// Update advances the typewriter by dt.
func (c *Cutscene) Update(dt float64) {
	c.elapsed += dt
	if c.finished {
		return
	}
	c.charAccum += dt
	for c.charAccum >= cutsceneCharInterval && c.shown < len(c.text) {
		c.charAccum -= cutsceneCharInterval
		c.shown++
	}
	if c.shown >= len(c.text) {
		c.finished = true
	}
}

// Skip reveals the full text at once. Ignored during the initial grace window
// so an early keypress does not blow past the scene.
func (c *Cutscene) Skip() {
	if c.elapsed < cutsceneSkipDelay {
		return
	}
	c.shown = len(c.text)
	c.finished = true
}

// Finished reports whether every character is visible.
func (c *Cutscene) Finished() bool { return c.finished }

// Visible returns the currently revealed prefix.
func (c *Cutscene) Visible() string { return c.text[:c.shown] }

const introText = "Huh, these villagers think too much of themselves. Let's run away... at least for now."

const nightText = "Hahahaha... trying to hunt me down just because I have another side? Well, who doesn't! Look at you!"
