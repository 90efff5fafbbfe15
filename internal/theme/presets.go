package theme

import "paper/internal/color"

// Stock theme names.
const (
	NameMD2Light = "md2-light"
	NameMD2Dark  = "md2-dark"
	NameMD3Light = "md3-light"
	NameMD3Dark  = "md3-dark"
)

const (
	pinkA400 = 0xf50057
	pinkA100 = 0xff80ab
)

// MD2Light returns the Material 2 light theme.
func MD2Light() *Theme {
	return &Theme{
		Name:      NameMD2Light,
		Mode:      ModeExact,
		Version:   V2,
		Roundness: 4,
		Colors: Palette{
			Primary:      color.Hex(0x6200ee),
			Accent:       color.Hex(0x03dac4),
			Background:   color.Hex(0xf6f6f6),
			Surface:      color.White,
			Error:        color.Hex(0xb00020),
			Text:         color.Black,
			OnSurface:    color.Black,
			Disabled:     color.Black.Alpha(0.26),
			Placeholder:  color.Black.Alpha(0.54),
			Backdrop:     color.Black.Alpha(0.5),
			Notification: color.Hex(pinkA400),
			Tooltip:      color.RGB(28, 27, 31),
		},
		Fonts:          ConfigureFonts(FontConfig{Version: V2}),
		AnimationScale: 1,
	}
}

// MD2Dark returns the Material 2 dark theme. It uses adaptive mode so
// elevated surfaces receive the white overlay.
func MD2Dark() *Theme {
	return &Theme{
		Name:      NameMD2Dark,
		Dark:      true,
		Mode:      ModeAdaptive,
		Version:   V2,
		Roundness: 4,
		Colors: Palette{
			Primary:      color.Hex(0xbb86fc),
			Accent:       color.Hex(0x03dac6),
			Background:   color.Hex(0x121212),
			Surface:      color.Hex(0x121212),
			Error:        color.Hex(0xcf6679),
			Text:         color.White,
			OnSurface:    color.White,
			Disabled:     color.White.Alpha(0.38),
			Placeholder:  color.White.Alpha(0.54),
			Backdrop:     color.Black.Alpha(0.5),
			Notification: color.Hex(pinkA100),
			Tooltip:      color.RGB(230, 225, 229),
		},
		Fonts:          ConfigureFonts(FontConfig{Version: V2}),
		AnimationScale: 1,
	}
}

// MD3Light returns the Material 3 baseline light theme.
func MD3Light() *Theme {
	onSurface := color.RGB(28, 27, 31)
	return &Theme{
		Name:      NameMD3Light,
		Mode:      ModeExact,
		Version:   V3,
		Roundness: 4,
		Colors: Palette{
			Primary:              color.RGB(103, 80, 164),
			PrimaryContainer:     color.RGB(234, 221, 255),
			Secondary:            color.RGB(98, 91, 113),
			SecondaryContainer:   color.RGB(232, 222, 248),
			Tertiary:             color.RGB(125, 82, 96),
			TertiaryContainer:    color.RGB(255, 216, 228),
			Surface:              color.RGB(255, 251, 254),
			SurfaceVariant:       color.RGB(231, 224, 236),
			SurfaceDisabled:      onSurface.Alpha(0.12),
			Background:           color.RGB(255, 251, 254),
			Error:                color.RGB(179, 38, 30),
			ErrorContainer:       color.RGB(249, 222, 220),
			OnPrimary:            color.White,
			OnPrimaryContainer:   color.RGB(33, 0, 93),
			OnSecondary:          color.White,
			OnSecondaryContainer: color.RGB(29, 25, 43),
			OnTertiary:           color.White,
			OnTertiaryContainer:  color.RGB(49, 17, 29),
			OnSurface:            onSurface,
			OnSurfaceVariant:     color.RGB(73, 69, 79),
			OnSurfaceDisabled:    onSurface.Alpha(0.38),
			OnError:              color.White,
			OnErrorContainer:     color.RGB(65, 14, 11),
			OnBackground:         onSurface,
			Outline:              color.RGB(121, 116, 126),
			OutlineVariant:       color.RGB(202, 196, 208),
			InverseSurface:       color.RGB(49, 48, 51),
			InverseOnSurface:     color.RGB(244, 239, 244),
			InversePrimary:       color.RGB(208, 188, 255),
			Shadow:               color.Black,
			Scrim:                color.Black,
			Backdrop:             color.RGBA(50, 47, 55, 0.4),
		},
		Elevation: [6]color.Color{
			color.Transparent,
			color.RGB(247, 243, 249),
			color.RGB(243, 237, 246),
			color.RGB(238, 232, 244),
			color.RGB(237, 230, 243),
			color.RGB(234, 226, 242),
		},
		Fonts:          ConfigureFonts(FontConfig{Version: V3}),
		AnimationScale: 1,
	}
}

// MD3Dark returns the Material 3 baseline dark theme.
func MD3Dark() *Theme {
	onSurface := color.RGB(230, 225, 229)
	return &Theme{
		Name:      NameMD3Dark,
		Dark:      true,
		Mode:      ModeExact,
		Version:   V3,
		Roundness: 4,
		Colors: Palette{
			Primary:              color.RGB(208, 188, 255),
			PrimaryContainer:     color.RGB(79, 55, 139),
			Secondary:            color.RGB(204, 194, 220),
			SecondaryContainer:   color.RGB(74, 68, 88),
			Tertiary:             color.RGB(239, 184, 200),
			TertiaryContainer:    color.RGB(99, 59, 72),
			Surface:              color.RGB(28, 27, 31),
			SurfaceVariant:       color.RGB(73, 69, 79),
			SurfaceDisabled:      onSurface.Alpha(0.12),
			Background:           color.RGB(28, 27, 31),
			Error:                color.RGB(242, 184, 181),
			ErrorContainer:       color.RGB(140, 29, 24),
			OnPrimary:            color.RGB(56, 30, 114),
			OnPrimaryContainer:   color.RGB(234, 221, 255),
			OnSecondary:          color.RGB(51, 45, 65),
			OnSecondaryContainer: color.RGB(232, 222, 248),
			OnTertiary:           color.RGB(73, 37, 50),
			OnTertiaryContainer:  color.RGB(255, 216, 228),
			OnSurface:            onSurface,
			OnSurfaceVariant:     color.RGB(202, 196, 208),
			OnSurfaceDisabled:    onSurface.Alpha(0.38),
			OnError:              color.RGB(96, 20, 16),
			OnErrorContainer:     color.RGB(242, 184, 181),
			OnBackground:         onSurface,
			Outline:              color.RGB(147, 143, 153),
			OutlineVariant:       color.RGB(73, 69, 79),
			InverseSurface:       onSurface,
			InverseOnSurface:     color.RGB(49, 48, 51),
			InversePrimary:       color.RGB(103, 80, 164),
			Shadow:               color.Black,
			Scrim:                color.Black,
			Backdrop:             color.RGBA(51, 47, 55, 0.4),
		},
		Elevation: [6]color.Color{
			color.Transparent,
			color.RGB(37, 35, 42),
			color.RGB(44, 40, 49),
			color.RGB(49, 44, 56),
			color.RGB(51, 46, 58),
			color.RGB(52, 49, 63),
		},
		Fonts:          ConfigureFonts(FontConfig{Version: V3}),
		AnimationScale: 1,
	}
}
