package effects

const PaperName = "paper"

// PaperSettings are the user tunables of the pencil-on-paper look.
type PaperSettings struct {
	Shader           string  `yaml:"shader"`
	PaperTexture     string  `yaml:"paper_texture"`
	PencilColor      Color   `yaml:"pencil_color"`
	BackColor        Color   `yaml:"back_color"`
	PencilSize       float32 `yaml:"pencil_size"`       // 0-2
	PencilCorrection float32 `yaml:"pencil_correction"` // 0-2
	Intensity        float32 `yaml:"intensity"`         // 0-1
	AnimationSpeed   float32 `yaml:"animation_speed"`   // 0-2
	CornerLoss       float32 `yaml:"corner_loss"`       // 0-1
	PaperFadeIn      float32 `yaml:"paper_fade_in"`     // 0-1
	PaperFadeColor   float32 `yaml:"paper_fade_color"`  // 0-1
}

// DefaultPaperSettings mirrors the stock drawing paper look.
func DefaultPaperSettings() PaperSettings {
	return PaperSettings{
		PencilColor:      Color{0, 0, 0, 0},
		BackColor:        White,
		PencilSize:       0.00125,
		PencilCorrection: 0.35,
		Intensity:        1,
		AnimationSpeed:   1,
		CornerLoss:       1,
		PaperFadeIn:      0,
		PaperFadeColor:   1,
	}
}

// Paper redraws the frame as pencil strokes on a paper texture.
type Paper struct {
	base
	Settings PaperSettings
	anim     AnimationState
	paper    TextureRef
}

func NewPaper(settings PaperSettings) *Paper {
	return &Paper{
		base:     newBase(PaperName),
		Settings: settings,
		anim:     NewAnimationState(),
	}
}

func (p *Paper) RequiresDepth() bool { return false }

func (p *Paper) Activate(res Resources) error {
	if p.ready() {
		return nil
	}
	p.attach(res)
	if err := p.loadProgram(p.Settings.Shader, false); err != nil {
		p.release()
		return err
	}
	p.paper = p.loadTexture("PaperTexture", p.Settings.PaperTexture)
	p.anim = NewAnimationState()
	p.markReady()
	return nil
}

func (p *Paper) Deactivate() {
	if !p.ready() {
		return
	}
	p.release()
	p.paper = TextureRef{}
	p.logDeactivated()
}

func (p *Paper) Animation() AnimationState { return p.anim }

// Parameters advances the paper timer by one frame and returns the full table.
func (p *Paper) Parameters(frame Frame) ParameterTable {
	p.anim.PaperTime = AdvancePaperTime(p.anim.PaperTime, frame.Delta)
	return PaperParameters(p.Settings, p.anim.PaperTime, p.paper)
}

func (p *Paper) Render(frame Frame, b Blitter, src, dst Target) {
	if !p.ready() || !p.hasProgram() {
		b.Copy(src, dst)
		return
	}
	Composite(b, src, dst, p.Parameters(frame), p.program)
}

// PaperParameters maps paper settings onto the shading stage table.
func PaperParameters(s PaperSettings, timeX float32, paper TextureRef) ParameterTable {
	return ParameterTable{
		"TimeX":            timeX,
		"PencilColor":      s.PencilColor,
		"BackColor":        s.BackColor,
		"PencilSize":       s.PencilSize,
		"PencilCorrection": s.PencilCorrection,
		"Intensity":        s.Intensity,
		"AnimationSpeed":   s.AnimationSpeed,
		"CornerLoss":       s.CornerLoss,
		"PaperFadeIn":      s.PaperFadeIn,
		"PaperFadeColor":   s.PaperFadeColor,
		"PaperTexture":     paper,
	}
}
