package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-dlp-gui/internal/logger"
	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
	"github.com/ytget/yt-dlp-gui/internal/session"
)

// RootUI is the main window
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	session      *session.Session
	settingsPath string
	logger       *zap.SugaredLogger

	urlEntry      *widget.Entry
	downloadBtn   *widget.Button
	audioCheck    *widget.Check
	overrideCheck *widget.Check

	browserCheck  *widget.Check
	browserSelect *widget.Select
	profileEntry  *widget.SelectEntry

	cookiesFileCheck *widget.Check
	cookiesFileLabel *widget.Label
	cookiesFileBtn   *widget.Button
	cookiesFilePath  string

	videoDirLabel *widget.Label
	audioDirLabel *widget.Label

	progress     *widget.ProgressBar
	log          *logView
	lastSaveBtn  *widget.Button
	updatesBtn   *widget.Button
	outputTarget *windowOutput
}

// NewRootUI builds the main window content. ctx bounds every background
// run started from the window.
func NewRootUI(ctx context.Context, window fyne.Window, sess *session.Session, settingsPath string, log *zap.SugaredLogger) *RootUI {
	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		session:      sess,
		settingsPath: settingsPath,
		logger:       logger.OrNop(log),
	}
	ui.outputTarget = &windowOutput{ui: ui}

	window.SetTitle(AppTitle)
	ui.setupUI()
	ui.restoreWindowSize()
	window.SetCloseIntercept(ui.onClose)

	go ui.loadBrowsers()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(LabelURLPlaceholder)
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}
	pasteBtn := widget.NewButton(LabelPaste, ui.onPaste)
	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	urlRow := container.NewBorder(nil, nil, container.NewHBox(pasteBtn, ui.downloadBtn), nil, ui.urlEntry)

	tip := widget.NewLabel(LabelTip)
	tip.TextStyle = fyne.TextStyle{Italic: true}

	ui.audioCheck = widget.NewCheck(LabelAudioOnly, nil)
	ui.overrideCheck = widget.NewCheck(LabelOverrideLocation, nil)
	overrideRow := container.NewHBox(ui.overrideCheck, ui.infoButton(HelpOverrideLocation))

	// Cookies from browser
	ui.browserSelect = widget.NewSelect(platform.DefaultBrowsers, ui.onBrowserChanged)
	ui.browserSelect.SetSelectedIndex(0)
	ui.profileEntry = widget.NewSelectEntry(nil)
	ui.profileEntry.SetPlaceHolder(LabelProfileHint)
	ui.onBrowserChanged(ui.browserSelect.Selected)
	ui.browserCheck = widget.NewCheck(LabelUseBrowserCookies, ui.onBrowserCookiesToggled)
	ui.onBrowserCookiesToggled(false)
	browserRow := container.NewBorder(nil, nil,
		container.NewHBox(
			ui.browserCheck,
			ui.infoButton(HelpBrowserCookies),
			widget.NewLabel(LabelBrowser),
			ui.browserSelect,
			widget.NewLabel(LabelProfile),
		),
		nil,
		ui.profileEntry,
	)

	// Cookies file
	ui.cookiesFileLabel = widget.NewLabel(LabelNoFileSelected)
	ui.cookiesFileLabel.Truncation = fyne.TextTruncateEllipsis
	ui.cookiesFileBtn = widget.NewButton(LabelChooseCookies, ui.onChooseCookiesFile)
	ui.cookiesFileCheck = widget.NewCheck(LabelUseCookiesFile, ui.onCookiesFileToggled)
	ui.onCookiesFileToggled(false)
	cookiesFileRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.cookiesFileCheck, ui.infoButton(HelpCookiesFile)),
		ui.cookiesFileBtn,
		ui.cookiesFileLabel,
	)

	// Target directories
	settings := ui.session.Settings()
	ui.videoDirLabel = widget.NewLabel(settings.VideoDir)
	ui.videoDirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.audioDirLabel = widget.NewLabel(settings.AudioDir)
	ui.audioDirLabel.Truncation = fyne.TextTruncateEllipsis
	videoRow := ui.directoryRow(LabelVideoTo, ui.videoDirLabel, LabelChooseVideoDir, ui.onChooseVideoDir, func() string {
		return ui.session.TargetDir(false)
	})
	audioRow := ui.directoryRow(LabelAudioTo, ui.audioDirLabel, LabelChooseAudioDir, ui.onChooseAudioDir, func() string {
		return ui.session.TargetDir(true)
	})

	// Output
	ui.progress = widget.NewProgressBar()
	ui.log = newLogView(MaxLogLines)

	// Bottom row
	readmeBtn := widget.NewButton(LabelViewReadme, ui.onViewReadme)
	ui.lastSaveBtn = widget.NewButton(LabelOpenLastSave, func() {
		ui.openDirectory(ui.session.LastSaveDir())
	})
	ui.updatesBtn = widget.NewButton(LabelCheckUpdates, ui.onCheckUpdates)
	ui.updateLastSaveButton()
	bottomRow := container.NewHBox(readmeBtn, layout.NewSpacer(), ui.lastSaveBtn, layout.NewSpacer(), ui.updatesBtn)

	top := container.NewVBox(
		urlRow,
		tip,
		ui.audioCheck,
		overrideRow,
		browserRow,
		cookiesFileRow,
		videoRow,
		audioRow,
		ui.progress,
	)

	ui.window.SetContent(container.NewBorder(top, bottomRow, nil, nil, ui.log.Container()))
}

func (ui *RootUI) directoryRow(title string, label *widget.Label, chooseText string, choose func(), current func() string) fyne.CanvasObject {
	chooseBtn := widget.NewButton(chooseText, choose)
	openBtn := widget.NewButton(LabelOpen, func() {
		ui.openDirectory(current())
	})
	return container.NewBorder(nil, nil, widget.NewLabel(title), container.NewHBox(chooseBtn, openBtn), label)
}

func (ui *RootUI) infoButton(text string) *widget.Button {
	btn := widget.NewButton(LabelInfo, func() {
		dialog.ShowInformation(TitleMoreInfo, text, ui.window)
	})
	btn.Importance = widget.LowImportance
	return btn
}

func (ui *RootUI) restoreWindowSize() {
	size := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	if ws := ui.session.Settings().WindowSize; ws != nil {
		size = fyne.NewSize(max(ws.Width, MinWindowWidth), ws.Height)
	}
	ui.window.Resize(size)
}

// onClose persists the settings before the window goes away
func (ui *RootUI) onClose() {
	size := ui.window.Canvas().Size()
	ui.session.SetWindowSize(size.Width, size.Height)
	if err := ui.session.Save(ui.settingsPath); err != nil {
		ui.logger.Warnw("Failed to save settings", "path", ui.settingsPath, "error", err)
	}
	ui.window.Close()
}

func (ui *RootUI) onPaste() {
	clipboard := fyne.CurrentApp().Clipboard()
	if clipboard == nil {
		return
	}
	ui.urlEntry.SetText(clipboard.Content())
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		ui.appendLine(MsgEnterURL)
		return
	}

	audioOnly := ui.audioCheck.Checked
	if !ui.overrideCheck.Checked {
		ui.startDownload(url, audioOnly, ui.session.TargetDir(audioOnly))
		return
	}

	title := TitleOverrideVideo
	if audioOnly {
		title = TitleOverrideAudio
	}
	ui.chooseFolder(title, ui.session.TargetDir(audioOnly), func(dir string) {
		if dir == "" {
			ui.appendLine(MsgCancelled)
			return
		}
		ui.startDownload(url, audioOnly, dir)
	})
}

func (ui *RootUI) startDownload(url string, audioOnly bool, targetDir string) {
	opts := session.Options{
		URL:       url,
		AudioOnly: audioOnly,
		Cookies:   ui.cookieSelection(),
	}

	ui.appendLine("")
	ui.downloadBtn.Disable()

	h, err := ui.session.Begin(ui.ctx, opts, targetDir, ui.outputTarget)
	if err != nil {
		if !errors.Is(err, session.ErrBusy) {
			ui.downloadBtn.Enable()
		}
		ui.appendLine("Error: " + err.Error())
		return
	}

	ui.logger.Debugw("Download started", "run", h.ID)
	ui.updateLastSaveButton()
}

func (ui *RootUI) cookieSelection() model.CookieSelection {
	return model.CookieSelection{
		UseBrowser: ui.browserCheck.Checked,
		Browser:    ui.browserSelect.Selected,
		Profile:    ui.profileEntry.Text,
		UseFile:    ui.cookiesFileCheck.Checked,
		FilePath:   ui.cookiesFilePath,
	}
}

func (ui *RootUI) onBrowserCookiesToggled(on bool) {
	if on {
		ui.browserSelect.Enable()
		ui.profileEntry.Enable()
		return
	}
	ui.browserSelect.Disable()
	ui.profileEntry.Disable()
}

func (ui *RootUI) onCookiesFileToggled(on bool) {
	if on {
		ui.cookiesFileBtn.Enable()
		ui.cookiesFileLabel.Importance = widget.MediumImportance
	} else {
		ui.cookiesFileBtn.Disable()
		ui.cookiesFileLabel.Importance = widget.LowImportance
	}
	ui.cookiesFileLabel.Refresh()
}

// loadBrowsers replaces the default browser list with the detected one
func (ui *RootUI) loadBrowsers() {
	browsers := platform.DetectBrowsers(ui.ctx)
	ui.logger.Debugw("Detected browsers", "browsers", browsers)

	fyne.Do(func() {
		selected := ui.browserSelect.Selected
		ui.browserSelect.SetOptions(browsers)
		ui.browserSelect.SetSelected(selected)
	})
}

func (ui *RootUI) onBrowserChanged(browser string) {
	if ui.profileEntry == nil {
		return
	}
	go func() {
		profiles := platform.DetectProfiles(ui.ctx, browser)
		fyne.Do(func() {
			ui.profileEntry.SetOptions(profiles)
		})
	}()
}

func (ui *RootUI) onChooseCookiesFile() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			ui.logger.Warnw("Cookies file dialog failed", "error", err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		ui.cookiesFilePath = r.URI().Path()
		ui.cookiesFileLabel.SetText(ui.cookiesFilePath)
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	ui.setDialogLocation(d, ".")
	d.Show()
}

func (ui *RootUI) onChooseVideoDir() {
	ui.chooseFolder(TitleVideoDir, ui.session.TargetDir(false), func(dir string) {
		if dir == "" {
			return
		}
		ui.session.SetVideoDir(dir)
		ui.videoDirLabel.SetText(dir)
	})
}

func (ui *RootUI) onChooseAudioDir() {
	ui.chooseFolder(TitleAudioDir, ui.session.TargetDir(true), func(dir string) {
		if dir == "" {
			return
		}
		ui.session.SetAudioDir(dir)
		ui.audioDirLabel.SetText(dir)
	})
}

// chooseFolder shows a folder picker starting at startDir. done receives ""
// when the user cancels.
func (ui *RootUI) chooseFolder(title, startDir string, done func(string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Warnw("Folder dialog failed", "title", title, "error", err)
			done("")
			return
		}
		if uri == nil {
			done("")
			return
		}
		done(uri.Path())
	}, ui.window)
	ui.setDialogLocation(d, startDir)
	d.Show()
}

func (ui *RootUI) setDialogLocation(d *dialog.FileDialog, dir string) {
	if !platform.IsExistingDir(dir) {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func (ui *RootUI) openDirectory(dir string) {
	err := platform.OpenDirectory(dir)
	if err == nil {
		return
	}

	ui.logger.Debugw("Open folder failed", "dir", dir, "error", err)
	ui.showWarning(TitleOpenFolder, folderErrorMessage(err, dir))
}

// folderErrorMessage maps an OpenDirectory error to the text shown to the user
func folderErrorMessage(err error, dir string) string {
	switch {
	case errors.Is(err, platform.ErrNoFolder):
		return MsgNoFolder
	case errors.Is(err, platform.ErrFolderMissing):
		return fmt.Sprintf(MsgFolderMissing, strings.TrimSpace(dir))
	default:
		return fmt.Sprintf(MsgFolderOpenError, strings.TrimSpace(dir))
	}
}

func (ui *RootUI) showWarning(title, msg string) {
	content := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(msg))
	dialog.NewCustom(title, LabelOK, content, ui.window).Show()
}

func (ui *RootUI) updateLastSaveButton() {
	if platform.IsExistingDir(ui.session.LastSaveDir()) {
		ui.lastSaveBtn.Enable()
	} else {
		ui.lastSaveBtn.Disable()
	}
}

func (ui *RootUI) onViewReadme() {
	content, ok := platform.FindReadme()
	if !ok {
		content = MsgReadmeNotFound
	}

	text := widget.NewRichTextFromMarkdown(content)
	text.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(TitleReadme, LabelClose, container.NewVScroll(text), ui.window)
	d.Resize(fyne.NewSize(ReadmeDialogWidth, ReadmeDialogHeight))
	d.Show()
}

func (ui *RootUI) onCheckUpdates() {
	ui.updatesBtn.Disable()
	go func() {
		ui.session.CheckForUpdates(ui.ctx, ui.outputTarget)
		fyne.Do(ui.updatesBtn.Enable)
	}()
}

// appendLine writes to the log from the UI goroutine
func (ui *RootUI) appendLine(line string) {
	ui.log.Append(line)
}

// windowOutput forwards session output from background goroutines onto the
// UI goroutine. Lines queue up until the next flush runs there.
type windowOutput struct {
	ui *RootUI

	mu        sync.Mutex
	pending   []string
	scheduled bool
}

func (o *windowOutput) AppendLine(line string) {
	o.mu.Lock()
	o.pending = append(o.pending, line)
	schedule := !o.scheduled
	o.scheduled = true
	o.mu.Unlock()

	if schedule {
		fyne.Do(o.flush)
	}
}

// flush runs on the UI goroutine
func (o *windowOutput) flush() {
	o.mu.Lock()
	lines := o.pending
	o.pending = nil
	o.scheduled = false
	o.mu.Unlock()

	o.ui.log.Append(lines...)
}

func (o *windowOutput) Progress(fraction float64) {
	fyne.Do(func() { o.ui.progress.SetValue(fraction) })
}

func (o *windowOutput) DownloadFinished() {
	fyne.Do(func() {
		o.ui.downloadBtn.Enable()
		o.ui.updateLastSaveButton()
	})
}
