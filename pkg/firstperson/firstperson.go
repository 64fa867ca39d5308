// Package firstperson routes meshes between first-person and third-person
// camera layers, generating a head-erased copy of skinned meshes so a
// first-person camera never renders the character's own head geometry.
package firstperson

import (
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/humanoid"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// Default camera layers for the two render passes.
const (
	DefaultFirstPersonOnlyLayer = 9
	DefaultThirdPersonOnlyLayer = 10
)

// Type classifies a mesh's first-person visibility.
type Type string

const (
	// TypeFirstPersonOnly renders the mesh only for the first-person camera.
	TypeFirstPersonOnly Type = "firstPersonOnly"
	// TypeThirdPersonOnly renders the mesh only for third-person cameras.
	TypeThirdPersonOnly Type = "thirdPersonOnly"
	// TypeBoth renders the mesh for every camera.
	TypeBoth Type = "both"
	// TypeAuto generates a head-erased copy for the first-person camera.
	TypeAuto Type = "auto"
)

// MeshAnnotation associates a mesh with its visibility class.
type MeshAnnotation struct {
	Mesh *scene.Mesh
	Type Type
}

// FirstPerson applies mesh annotations once and owns the erased meshes it
// creates.
type FirstPerson struct {
	FirstPersonOnlyLayer int
	ThirdPersonOnlyLayer int

	humanoid    *humanoid.Humanoid
	annotations []MeshAnnotation
	initialized bool
	erased      []*scene.Mesh
}

// New creates a first-person controller with the default layers.
func New(h *humanoid.Humanoid, annotations []MeshAnnotation) *FirstPerson {
	return &FirstPerson{
		FirstPersonOnlyLayer: DefaultFirstPersonOnlyLayer,
		ThirdPersonOnlyLayer: DefaultThirdPersonOnlyLayer,
		humanoid:             h,
		annotations:          annotations,
	}
}

// Annotations returns the mesh annotations.
func (f *FirstPerson) Annotations() []MeshAnnotation {
	return f.annotations
}

// ErasedMeshes returns the head-erased meshes Setup created. The runtime is
// responsible for disposing their buffers; everything else is loader-owned.
func (f *FirstPerson) ErasedMeshes() []*scene.Mesh {
	return f.erased
}

// Setup applies every annotation. Safe to call more than once; only the
// first call has any effect.
func (f *FirstPerson) Setup() {
	if f.initialized {
		return
	}
	f.initialized = true

	for _, ann := range f.annotations {
		switch ann.Type {
		case TypeFirstPersonOnly:
			ann.Mesh.Layers.Set(f.FirstPersonOnlyLayer)
		case TypeThirdPersonOnly:
			ann.Mesh.Layers.Set(f.ThirdPersonOnlyLayer)
		case TypeBoth:
			ann.Mesh.Layers.Enable(f.FirstPersonOnlyLayer)
			ann.Mesh.Layers.Enable(f.ThirdPersonOnlyLayer)
		case TypeAuto:
			f.setupAuto(ann.Mesh)
		default:
			logger.Warn("unknown first-person annotation type",
				zap.String("mesh", ann.Mesh.Name),
				zap.String("type", string(ann.Type)))
		}
	}
}

// setupAuto decides an auto-annotated mesh's fate. Skinned meshes touching
// the head get a headless clone; everything else is routed whole.
func (f *FirstPerson) setupAuto(mesh *scene.Mesh) {
	if mesh.Skeleton == nil {
		// Static meshes attached under the head move with it and must not
		// reach the first-person camera.
		if mesh.Node != nil && f.isEraseTarget(mesh.Node) {
			mesh.Layers.Set(f.ThirdPersonOnlyLayer)
		} else {
			mesh.Layers.Enable(f.FirstPersonOnlyLayer)
			mesh.Layers.Enable(f.ThirdPersonOnlyLayer)
		}
		return
	}

	erase := f.eraseJointSet(mesh.Skeleton)
	if len(erase) == 0 {
		mesh.Layers.Enable(f.FirstPersonOnlyLayer)
		mesh.Layers.Enable(f.ThirdPersonOnlyLayer)
		return
	}

	headless := eraseMesh(mesh, erase)
	headless.Layers.Set(f.FirstPersonOnlyLayer)
	mesh.Layers.Set(f.ThirdPersonOnlyLayer)
	f.erased = append(f.erased, headless)
}

// eraseJointSet returns the skeleton joint indices that are the head bone or
// any of its descendants.
func (f *FirstPerson) eraseJointSet(skeleton *scene.Skeleton) map[int]bool {
	set := make(map[int]bool)
	for i, joint := range skeleton.Joints {
		if joint != nil && f.isEraseTarget(joint) {
			set[i] = true
		}
	}
	return set
}

// isEraseTarget walks up the parent chain until it hits the head bone or
// runs out of ancestors.
func (f *FirstPerson) isEraseTarget(node *scene.Node) bool {
	head := f.humanoid.RawBoneNode(humanoid.BoneHead)
	for n := node; n != nil; n = n.Parent() {
		if n == head {
			return true
		}
	}
	return false
}
