package expression

import (
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// MaterialColorType selects which color channel of a material a bind drives.
type MaterialColorType string

const (
	ColorTypeColor    MaterialColorType = "color"
	ColorTypeEmission MaterialColorType = "emissionColor"
	ColorTypeShade    MaterialColorType = "shadeColor"
	ColorTypeMatcap   MaterialColorType = "matcapColor"
	ColorTypeRim      MaterialColorType = "rimColor"
	ColorTypeOutline  MaterialColorType = "outlineColor"
)

// colorPropertyTable maps a material kind and color channel to the concrete
// property name, resolved once at bind construction.
var colorPropertyTable = map[scene.MaterialKind]map[MaterialColorType]string{
	scene.MaterialStandard: {
		ColorTypeColor:    "color",
		ColorTypeEmission: "emissive",
	},
	scene.MaterialBasic: {
		ColorTypeColor: "color",
	},
	scene.MaterialToon: {
		ColorTypeColor:    "color",
		ColorTypeEmission: "emissive",
		ColorTypeShade:    "shadeColor",
		ColorTypeMatcap:   "matcapColor",
		ColorTypeRim:      "rimColor",
		ColorTypeOutline:  "outlineColor",
	},
}

// MaterialColorBind drives one color channel of a material toward a target
// value. Initial value and delta are captured once at construction; apply is
// additive, clear restores the initial value. The alpha channel is handled
// the same way as a scalar, for the base color channel only.
type MaterialColorBind struct {
	property *scene.Color
	initial  scene.Color
	delta    scene.Color

	material     *scene.Material
	initialAlpha float32
	deltaAlpha   float32
	hasAlpha     bool
}

// NewMaterialColorBind binds colorType on material toward target/targetAlpha.
// An unsupported kind/channel combination is warned about once and yields a
// no-op bind, never an error.
func NewMaterialColorBind(material *scene.Material, colorType MaterialColorType, target scene.Color, targetAlpha float32) *MaterialColorBind {
	propName, ok := colorPropertyTable[material.Kind][colorType]
	if !ok {
		logger.Warn("material does not support color channel, bind is a no-op",
			zap.String("material", material.Name),
			zap.Stringer("kind", material.Kind),
			zap.String("channel", string(colorType)))
		return &MaterialColorBind{}
	}

	prop, ok := material.ColorProperty(propName)
	if !ok {
		logger.Warn("material is missing color property, bind is a no-op",
			zap.String("material", material.Name),
			zap.String("property", propName))
		return &MaterialColorBind{}
	}

	b := &MaterialColorBind{
		property: prop,
		initial:  *prop,
		delta:    target.Sub(*prop),
	}
	if colorType == ColorTypeColor {
		b.material = material
		b.initialAlpha = material.Opacity
		b.deltaAlpha = targetAlpha - material.Opacity
		b.hasAlpha = true
	}
	return b
}

// Apply adds delta * weight to the bound channel.
func (b *MaterialColorBind) Apply(weight float32) {
	if b.property == nil {
		return
	}
	b.property.Add(b.delta.Scale(weight))
	if b.hasAlpha {
		b.material.Opacity += b.deltaAlpha * weight
	}
}

// Clear restores the channel to its initial value.
func (b *MaterialColorBind) Clear() {
	if b.property == nil {
		return
	}
	b.property.Copy(b.initial)
	if b.hasAlpha {
		b.material.Opacity = b.initialAlpha
	}
}
