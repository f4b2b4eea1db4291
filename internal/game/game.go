package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/input"
	"github.com/iburimskiy/particle-field/internal/particles"
)

type Game struct {
	log      *slog.Logger
	settings config.Settings
	reload   <-chan config.Settings

	frames   *frame.Queue
	events   *input.Dispatcher
	renderer *particles.Renderer
	canvas   *layerCanvas
	pointer  pointerTracker
	touchIDs []ebiten.TouchID

	width, height int

	showHUD  bool
	frameLog *frameLog
	started  time.Time
	lastErr  error
}

// NewGame builds the desktop host around field. reload may be nil.
func NewGame(log *slog.Logger, settings config.Settings, field *particles.Field, reload <-chan config.Settings) *Game {
	frames := frame.NewQueue()
	events := input.NewDispatcher()
	return &Game{
		log:      log,
		settings: settings,
		reload:   reload,
		frames:   frames,
		events:   events,
		renderer: particles.NewRenderer(field, frames, events),
		canvas:   &layerCanvas{},
		frameLog: newFrameLog(config.FrameRingSize),
		started:  time.Now(),
	}
}

func (g *Game) Update() error {
	select {
	case s, ok := <-g.reload:
		if ok {
			g.settings = s
			g.renderer.Field().SetParams(s.Params())
		}
	default:
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	sample := inputSample{
		focused: ebiten.IsFocused(),
		width:   g.width,
		height:  g.height,
	}
	sample.cursor.x, sample.cursor.y = ebiten.CursorPosition()
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		sample.touches = append(sample.touches, point{x, y})
	}
	for _, ev := range g.pointer.observe(sample) {
		g.events.Dispatch(ev)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.renderer.Teardown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.renderer.Field().Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.lastErr = g.saveSnapshot()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.settings.BackgroundColor())
	if g.canvas.target == nil {
		return
	}

	start := time.Now()
	g.frames.Tick()
	g.frameLog.record(time.Since(start))

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.settings.Opacity))
	screen.DrawImage(g.canvas.target, op)

	status := ""
	if g.showHUD {
		status = hudLine(g.renderer.Stats(), g.frameLog.average(), time.Since(g.started))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout keeps the logical screen at the window size. The first call mounts
// the renderer; later size changes reach it as resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.width && outsideHeight == g.height {
		return outsideWidth, outsideHeight
	}
	g.width, g.height = outsideWidth, outsideHeight
	if g.canvas.target != nil {
		g.canvas.target.Deallocate()
	}
	g.canvas.target = ebiten.NewImage(max(outsideWidth, 1), max(outsideHeight, 1))

	if !g.renderer.Active() {
		g.renderer.Mount(g.canvas, float64(outsideWidth), float64(outsideHeight))
		if !g.renderer.Active() {
			g.log.Debug("renderer not mounted")
		}
		return outsideWidth, outsideHeight
	}
	g.log.Debug("resize", "width", outsideWidth, "height", outsideHeight)
	g.events.Dispatch(input.Event{Kind: input.Resize, Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the user quits.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
