package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Escape From Spider"
	MaxFrameTime = 0.1 // dt clamp, seconds
)

// Player movement and mouse look.
const (
	PlayerSpeed        = 8.0 // units per second
	PlayerRadius       = 0.5
	MouseSensitivity   = 0.3  // degrees per pixel
	PitchLimitDegrees  = 80.0 // symmetric clamp
	StrafeAngleDegrees = 90.0
)

// Spider pursuit.
const (
	SpiderSpeed         = 4.0 // units per second
	SpiderBoundsStretch = 0.3
	SpiderWarnDistance  = 6.0 // horizontal units
	SpiderWarnCooldown  = 4.0 // seconds between "too close" cues
)

// Default spawn points, used when a level omits them.
var (
	DefaultPlayerSpawn = [3]float64{100, 2, -16}
	DefaultSpiderSpawn = [3]float64{0, -0.62, 10}
)

// Camera.
const (
	CameraFOVDegrees = 60.0
	CameraNear       = 0.05
	CameraFar        = 500.0
)

// Lighter (point light held in front of the camera).
const (
	LighterForward = 0.3
	LighterSide    = 0.1
	LighterDrop    = 0.1
	LighterRadius  = 5.0
)

// Scene lighting and fog.
const (
	BackgroundGray = 0.1
	AmbientLevel   = 0.1
	SunLevel       = 0.1
	FogParam       = 0.6
	FogCoefMin     = 0.001
	FogCoefMax     = 0.5
)

// Title screen web pulse: alpha ping-pongs between 0 and TitleAlphaMax.
const (
	TitleAlphaMax   = 0.1
	TitleAlphaRate  = 0.006 // alpha per second
	TitleWebSpin    = 0.1   // radians per second
	TitleAlphaStart = 0.1
)

// Menu button layout relative to the window centre.
const (
	ButtonOffsetX = -60
	ButtonOffsetY = 250
	ButtonWidth   = 150
	ButtonHeight  = 50
)

// Font atlas layout (rasterized from basicfont at startup).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 8
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 104
)

// Overlay vertex budget per flush (pos2 + uv2 + rgba4).
const MaxOverlayVerts = 8192
