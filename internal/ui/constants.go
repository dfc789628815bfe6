package ui

// Window
const (
	AppTitle            = "yt-dlp GUI"
	DefaultWindowWidth  = 760
	DefaultWindowHeight = 640
	MinWindowWidth      = 500
)

// Labels
const (
	LabelPaste             = "Paste from Clipboard"
	LabelDownload          = "Download"
	LabelURLPlaceholder    = "Enter video URL here..."
	LabelTip               = "Tip: Click the (i) buttons for more information."
	LabelAudioOnly         = "Audio only (extract as .mp3)"
	LabelOverrideLocation  = "Choose save location for each download"
	LabelUseBrowserCookies = "Use cookies from browser"
	LabelBrowser           = "Browser:"
	LabelProfile           = "Profile:"
	LabelProfileHint       = "Profile (e.g., Default, Profile 1)"
	LabelUseCookiesFile    = "Use cookies file"
	LabelNoFileSelected    = "(no file selected)"
	LabelChooseCookies     = "Choose cookies.txt"
	LabelVideoTo           = "Video to:"
	LabelAudioTo           = "Audio to:"
	LabelChooseVideoDir    = "Choose Video Directory"
	LabelChooseAudioDir    = "Choose Audio Directory"
	LabelOpen              = "Open"
	LabelViewReadme        = "View README"
	LabelOpenLastSave      = "Open last save location"
	LabelCheckUpdates      = "Check for yt-dlp updates"
	LabelInfo              = "(i)"
	LabelClose             = "Close"
	LabelOK                = "OK"
)

// Help texts shown by the (i) buttons
const (
	HelpOverrideLocation = "Overrides default locations shown below and asks for save location every time."
	HelpBrowserCookies   = "Some sites require login. Extract cookies from a logged-in browser profile. " +
		"If the browser's cookie database is locked, fully close the browser first. " +
		"Then choose the browser and optional profile."
	HelpCookiesFile = "Use a Netscape-format cookies.txt exported from your browser (helpful when the browser cookie DB is locked). " +
		"How: Install a cookies exporter extension; while logged in, open the site's page and export cookies as 'cookies.txt'."
)

// Dialog titles
const (
	TitleOpenFolder    = "Open folder"
	TitleReadme        = "README"
	TitleVideoDir      = "Select Video Download Directory"
	TitleAudioDir      = "Select Audio Download Directory"
	TitleOverrideVideo = "Select Download Directory for Video"
	TitleOverrideAudio = "Select Download Directory for Audio"
	TitleMoreInfo      = "More information"
)

// README dialog size
const (
	ReadmeDialogWidth  = 900
	ReadmeDialogHeight = 600
)

// Log messages written by the window itself
const (
	MsgEnterURL        = "Please enter a URL."
	MsgCancelled       = "Download cancelled."
	MsgReadmeNotFound  = "README.md not found."
	MsgNoFolder        = "No folder is set."
	MsgFolderMissing   = "Folder does not exist:\n%s"
	MsgFolderOpenError = "Could not open folder:\n%s"
)

// MaxLogLines bounds the log view; older lines are dropped
const MaxLogLines = 5000
