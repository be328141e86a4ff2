package icons

// IconSpec describes one launcher icon: the density bucket folder it goes to and its edge length in pixels.
type IconSpec struct {
	Folder string
	Size   int
}

const (
	LauncherFileName       = "ic_launcher.png"
	LauncherDescriptorName = "ic_launcher.xml"

	ForegroundFolder         = "drawable"
	ForegroundFileName       = "ic_launcher_foreground.png"
	ForegroundDescriptorName = "ic_launcher_foreground.xml"

	// ForegroundCanvasSize is 108dp at xxxhdpi (4x).
	ForegroundCanvasSize = 432
	// ForegroundInnerSize is the 72dp safe zone at xxxhdpi.
	ForegroundInnerSize = 288
)

// LauncherIcons is the fixed mipmap table, 48dp per bucket.
var LauncherIcons = []IconSpec{
	{Folder: "mipmap-mdpi", Size: 48},
	{Folder: "mipmap-hdpi", Size: 72},
	{Folder: "mipmap-xhdpi", Size: 96},
	{Folder: "mipmap-xxhdpi", Size: 144},
	{Folder: "mipmap-xxxhdpi", Size: 192},
}
