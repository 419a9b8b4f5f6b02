package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/berrythewa/cliplate/internal/config"
	customtheme "github.com/berrythewa/cliplate/internal/gui/theme"
	"github.com/berrythewa/cliplate/internal/gui/views"
	"github.com/berrythewa/cliplate/internal/session"
	"github.com/berrythewa/cliplate/internal/translate"
)

// AppID identifies the application to fyne (preferences, storage)
const AppID = "io.github.berrythewa.cliplate"

// App is the translator window. It implements session.Display.
type App struct {
	// Core components
	fyneApp    fyne.App
	mainWindow fyne.Window
	theme      *customtheme.CustomTheme
	mainView   *views.MainView
	config     *config.Config
	logger     *zap.Logger

	session *session.Session
	ctx     context.Context
	cancel  context.CancelFunc

	formatMenu   *fyne.Menu
	languageMenu *fyne.Menu
}

// NewApp creates the fyne application and its main window
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	return newApp(app.NewWithID(AppID), cfg, logger)
}

func newApp(fyneApp fyne.App, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		fyneApp:    fyneApp,
		mainWindow: fyneApp.NewWindow(cfg.Display.Title),
		theme:      customtheme.NewCustomTheme(),
		config:     cfg,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
	a.mainView = views.NewMainView(a.speak)
	a.applyFont(cfg.Display.Font)
	a.fyneApp.Settings().SetTheme(a.theme)
	a.setupMainWindow()
	return a
}

// Bind attaches the session driving this window and builds the menus
func (a *App) Bind(s *session.Session) {
	a.session = s
	a.setupMenu()
}

// ShowTranslation implements session.Display
func (a *App) ShowTranslation(text string) {
	fyne.Do(func() {
		a.mainView.SetText(text)
	})
}

// SetFont implements session.Display
func (a *App) SetFont(name string) {
	fyne.Do(func() {
		a.applyFont(name)
		a.fyneApp.Settings().SetTheme(a.theme)
		a.mainView.Refresh()
		a.refreshMenus()
	})
}

// Run starts the clipboard session and shows the window until it is closed
// or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(a.fyneApp.Quit)
		case <-a.ctx.Done():
		}
	}()

	if a.session != nil {
		go func() {
			if err := a.session.Run(a.ctx); err != nil {
				a.logger.Error("Session stopped", zap.Error(err))
			}
		}()
	}

	a.mainWindow.ShowAndRun()
	a.cancel()
	return nil
}

// Shutdown stops the session
func (a *App) Shutdown() {
	a.cancel()
}

// setupMainWindow configures the main application window
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(a.config.Display.Width, a.config.Display.Height))
	a.mainWindow.SetContent(a.mainView.GetContent())

	if path := a.config.Display.IconPath; path != "" {
		icon, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			a.logger.Warn("Failed to load window icon", zap.String("path", path), zap.Error(err))
		} else {
			a.mainWindow.SetIcon(icon)
		}
	}

	a.mainWindow.SetOnClosed(a.Shutdown)
}

// setupMenu builds the Format and Language menus from the configuration
func (a *App) setupMenu() {
	var fontItems []*fyne.MenuItem
	for _, f := range a.config.Display.Fonts {
		name := f.Name
		fontItems = append(fontItems, fyne.NewMenuItem(name, func() {
			if a.session == nil {
				return
			}
			if err := a.session.SetFont(name); err != nil {
				a.logger.Warn("Font not applied", zap.String("font", name), zap.Error(err))
			}
		}))
	}
	a.formatMenu = fyne.NewMenu("Format", fontItems...)

	var langItems []*fyne.MenuItem
	for _, lang := range translate.Languages(a.config.Languages) {
		code := lang.Code
		langItems = append(langItems, fyne.NewMenuItem(lang.Name, func() {
			if a.session == nil {
				return
			}
			if err := a.session.SetLanguage(code); err != nil {
				a.logger.Warn("Language not applied", zap.String("lang", code), zap.Error(err))
				return
			}
			a.refreshMenus()
		}))
	}
	a.languageMenu = fyne.NewMenu("Language", langItems...)

	a.refreshMenus()
	a.mainWindow.SetMainMenu(fyne.NewMainMenu(a.formatMenu, a.languageMenu))
}

// refreshMenus moves the check marks to the current font and language
func (a *App) refreshMenus() {
	if a.formatMenu != nil {
		for _, item := range a.formatMenu.Items {
			item.Checked = item.Label == a.theme.FontName()
		}
		a.formatMenu.Refresh()
	}
	if a.languageMenu != nil && a.session != nil {
		current := translate.DisplayName(a.session.Language())
		for _, item := range a.languageMenu.Items {
			item.Checked = item.Label == current
		}
		a.languageMenu.Refresh()
	}
}

func (a *App) applyFont(name string) {
	f, ok := a.config.LookupFont(name)
	if !ok {
		f = config.FontConfig{Name: name}
	}
	if err := a.theme.SetFont(f.Name, f.Path, f.Monospace); err != nil {
		a.logger.Warn("Failed to load font", zap.String("font", name), zap.Error(err))
	}
}

func (a *App) speak() {
	if a.session == nil {
		return
	}
	a.mainView.SetSpeaking(true)
	go func() {
		defer fyne.Do(func() { a.mainView.SetSpeaking(false) })
		// errors are logged by the session
		_ = a.session.Speak(a.ctx)
	}()
}
