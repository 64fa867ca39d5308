package firstperson

import (
	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/Faultbox/avatarkit/internal/logger"
	"github.com/Faultbox/avatarkit/pkg/scene"
)

// eraseMesh clones mesh and drops every triangle that has any vertex with a
// nonzero skin weight on one of the erase joints. The clone gets its own
// index and influence buffers; skeleton and materials stay shared with the
// original.
func eraseMesh(mesh *scene.Mesh, erase map[int]bool) *scene.Mesh {
	headless := scene.NewMesh(mesh.Name + " (headless)")
	headless.Node = mesh.Node
	headless.Skeleton = mesh.Skeleton
	headless.Materials = mesh.Materials

	if err := deepcopy.Copy(&headless.Skin, mesh.Skin); err != nil {
		logger.Warn("skin buffer clone failed, sharing with original",
			zap.String("mesh", mesh.Name), zap.Error(err))
		headless.Skin = mesh.Skin
	}
	if err := deepcopy.Copy(&headless.MorphInfluences, mesh.MorphInfluences); err != nil {
		headless.MorphInfluences = append([]float32(nil), mesh.MorphInfluences...)
	}

	headless.Indices = make([]uint32, 0, len(mesh.Indices))
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		keep := true
		for j := 0; j < 3; j++ {
			if vertexWeightsErased(mesh, int(mesh.Indices[i+j]), erase) {
				keep = false
				break
			}
		}
		if keep {
			headless.Indices = append(headless.Indices,
				mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2])
		}
	}

	return headless
}

// vertexWeightsErased reports whether the vertex has any nonzero weight on an
// erased joint.
func vertexWeightsErased(mesh *scene.Mesh, vertex int, erase map[int]bool) bool {
	if vertex >= len(mesh.Skin) {
		return false
	}
	skin := mesh.Skin[vertex]
	for k := 0; k < 4; k++ {
		if skin.Weights[k] > 0 && erase[skin.Joints[k]] {
			return true
		}
	}
	return false
}
