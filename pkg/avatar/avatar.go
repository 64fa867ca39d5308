// Package avatar composes the four runtime subsystems behind one facade with
// a single per-frame Update entry point.
package avatar

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/expression"
	"github.com/Faultbox/avatarkit/pkg/firstperson"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
	"github.com/Faultbox/avatarkit/pkg/lookat"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Avatar is one runnable character instance. All state is single-threaded;
// the host render loop drives Update once per frame.
type Avatar struct {
	ID uuid.UUID

	Humanoid    *humanoid.Humanoid
	Expressions *expression.Manager
	LookAt      *lookat.LookAt
	FirstPerson *firstperson.FirstPerson

	Meshes []*scene.Mesh

	log *zap.Logger
}

// New builds an avatar from a definition. Missing required bones are a
// construction error; malformed expression entries are warned about and
// skipped.
func New(def *Definition) (*Avatar, error) {
	h, err := humanoid.New(def.Bones)
	if err != nil {
		return nil, fmt.Errorf("avatar: %w", err)
	}

	a := &Avatar{
		ID:       uuid.New(),
		Humanoid: h,
		Meshes:   def.Meshes,
		log:      logger.Named("avatar"),
	}

	a.Expressions = buildExpressions(def.Expressions)
	a.LookAt = buildLookAt(h, a.Expressions, def.LookAt)

	a.FirstPerson = firstperson.New(h, def.FirstPersonAnnotations)
	a.FirstPerson.Setup()
	a.Meshes = append(a.Meshes, a.FirstPerson.ErasedMeshes()...)

	a.log.Info("avatar constructed",
		zap.String("id", a.ID.String()),
		zap.Int("expressions", len(a.Expressions.Expressions())),
		zap.Int("meshes", len(a.Meshes)))

	return a, nil
}

// buildExpressions registers every valid expression definition.
func buildExpressions(defs []ExpressionDef) *expression.Manager {
	m := expression.NewManager()
	for _, def := range defs {
		if def.Preset && !expression.IsPreset(def.Name) {
			logger.Warn("unknown expression preset, skipping",
				zap.String("name", def.Name))
			continue
		}

		e := expression.New(def.Name)
		e.IsBinary = def.IsBinary
		if def.OverrideBlink != "" {
			e.OverrideBlink = def.OverrideBlink
		}
		if def.OverrideLookAt != "" {
			e.OverrideLookAt = def.OverrideLookAt
		}
		if def.OverrideMouth != "" {
			e.OverrideMouth = def.OverrideMouth
		}

		for _, b := range def.MorphBinds {
			e.AddBind(expression.NewMorphTargetBind(b.Meshes, b.Index, b.Weight))
		}
		for _, b := range def.MaterialColorBinds {
			e.AddBind(expression.NewMaterialColorBind(b.Material, b.Type, b.TargetValue, b.TargetAlpha))
		}
		for _, b := range def.TextureTransformBinds {
			e.AddBind(expression.NewTextureTransformBind(b.Material, b.Offset, b.Scale))
		}

		m.Register(e)
	}
	return m
}

// buildLookAt wires the gaze controller with the configured applier mode.
func buildLookAt(h *humanoid.Humanoid, m *expression.Manager, def *LookAtDef) *lookat.LookAt {
	if def == nil {
		def = DefaultLookAtDef()
	}

	inner := lookat.NewRangeMap(def.HorizontalInner.InputMaxValue, def.HorizontalInner.OutputScale)
	outer := lookat.NewRangeMap(def.HorizontalOuter.InputMaxValue, def.HorizontalOuter.OutputScale)
	down := lookat.NewRangeMap(def.VerticalDown.InputMaxValue, def.VerticalDown.OutputScale)
	up := lookat.NewRangeMap(def.VerticalUp.InputMaxValue, def.VerticalUp.OutputScale)

	var applier lookat.Applier
	switch def.Mode {
	case LookAtModeExpression:
		applier = lookat.NewExpressionApplier(m, outer, down, up)
	default:
		applier = lookat.NewBoneApplier(h, inner, outer, down, up)
	}

	l := lookat.New(h, applier)
	l.OffsetFromHead = def.OffsetFromHead
	return l
}

// Update advances the avatar by delta seconds: humanoid pose transfer first,
// then gaze, then expression weights.
func (a *Avatar) Update(delta float32) {
	a.Humanoid.Update()
	a.LookAt.Update(delta)
	a.Expressions.Update()
}

// ExpressionTrackName returns the animation track name driving the named
// expression's weight, or "" if the expression does not exist.
func (a *Avatar) ExpressionTrackName(name string) string {
	return a.Expressions.TrackName(name)
}
