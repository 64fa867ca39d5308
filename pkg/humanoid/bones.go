// Package humanoid implements the bone layer of the avatar runtime: the raw
// rig with rest-relative pose accessors, and the normalized rig that retargets
// poses across differently-proportioned characters.
package humanoid

// BoneName identifies one slot in the fixed humanoid bone set.
type BoneName string

// Humanoid bone names. Every conforming avatar maps a subset of these to its
// own scene nodes; RequiredBones lists the mandatory subset.
const (
	BoneHips       BoneName = "hips"
	BoneSpine      BoneName = "spine"
	BoneChest      BoneName = "chest"
	BoneUpperChest BoneName = "upperChest"
	BoneNeck       BoneName = "neck"
	BoneHead       BoneName = "head"
	BoneLeftEye    BoneName = "leftEye"
	BoneRightEye   BoneName = "rightEye"
	BoneJaw        BoneName = "jaw"

	BoneLeftShoulder  BoneName = "leftShoulder"
	BoneLeftUpperArm  BoneName = "leftUpperArm"
	BoneLeftLowerArm  BoneName = "leftLowerArm"
	BoneLeftHand      BoneName = "leftHand"
	BoneRightShoulder BoneName = "rightShoulder"
	BoneRightUpperArm BoneName = "rightUpperArm"
	BoneRightLowerArm BoneName = "rightLowerArm"
	BoneRightHand     BoneName = "rightHand"

	BoneLeftUpperLeg  BoneName = "leftUpperLeg"
	BoneLeftLowerLeg  BoneName = "leftLowerLeg"
	BoneLeftFoot      BoneName = "leftFoot"
	BoneLeftToes      BoneName = "leftToes"
	BoneRightUpperLeg BoneName = "rightUpperLeg"
	BoneRightLowerLeg BoneName = "rightLowerLeg"
	BoneRightFoot     BoneName = "rightFoot"
	BoneRightToes     BoneName = "rightToes"

	BoneLeftThumbMetacarpal     BoneName = "leftThumbMetacarpal"
	BoneLeftThumbProximal       BoneName = "leftThumbProximal"
	BoneLeftThumbDistal         BoneName = "leftThumbDistal"
	BoneLeftIndexProximal       BoneName = "leftIndexProximal"
	BoneLeftIndexIntermediate   BoneName = "leftIndexIntermediate"
	BoneLeftIndexDistal         BoneName = "leftIndexDistal"
	BoneLeftMiddleProximal      BoneName = "leftMiddleProximal"
	BoneLeftMiddleIntermediate  BoneName = "leftMiddleIntermediate"
	BoneLeftMiddleDistal        BoneName = "leftMiddleDistal"
	BoneLeftRingProximal        BoneName = "leftRingProximal"
	BoneLeftRingIntermediate    BoneName = "leftRingIntermediate"
	BoneLeftRingDistal          BoneName = "leftRingDistal"
	BoneLeftLittleProximal      BoneName = "leftLittleProximal"
	BoneLeftLittleIntermediate  BoneName = "leftLittleIntermediate"
	BoneLeftLittleDistal        BoneName = "leftLittleDistal"
	BoneRightThumbMetacarpal    BoneName = "rightThumbMetacarpal"
	BoneRightThumbProximal      BoneName = "rightThumbProximal"
	BoneRightThumbDistal        BoneName = "rightThumbDistal"
	BoneRightIndexProximal      BoneName = "rightIndexProximal"
	BoneRightIndexIntermediate  BoneName = "rightIndexIntermediate"
	BoneRightIndexDistal        BoneName = "rightIndexDistal"
	BoneRightMiddleProximal     BoneName = "rightMiddleProximal"
	BoneRightMiddleIntermediate BoneName = "rightMiddleIntermediate"
	BoneRightMiddleDistal       BoneName = "rightMiddleDistal"
	BoneRightRingProximal       BoneName = "rightRingProximal"
	BoneRightRingIntermediate   BoneName = "rightRingIntermediate"
	BoneRightRingDistal         BoneName = "rightRingDistal"
	BoneRightLittleProximal     BoneName = "rightLittleProximal"
	BoneRightLittleIntermediate BoneName = "rightLittleIntermediate"
	BoneRightLittleDistal       BoneName = "rightLittleDistal"
)

// ListedBones enumerates every humanoid bone, parents before children. Code
// that builds hierarchies iterates in this order so a bone's ancestors are
// always processed first.
var ListedBones = []BoneName{
	BoneHips,
	BoneSpine,
	BoneChest,
	BoneUpperChest,
	BoneNeck,
	BoneHead,
	BoneLeftEye,
	BoneRightEye,
	BoneJaw,
	BoneLeftShoulder,
	BoneLeftUpperArm,
	BoneLeftLowerArm,
	BoneLeftHand,
	BoneRightShoulder,
	BoneRightUpperArm,
	BoneRightLowerArm,
	BoneRightHand,
	BoneLeftUpperLeg,
	BoneLeftLowerLeg,
	BoneLeftFoot,
	BoneLeftToes,
	BoneRightUpperLeg,
	BoneRightLowerLeg,
	BoneRightFoot,
	BoneRightToes,
	BoneLeftThumbMetacarpal,
	BoneLeftThumbProximal,
	BoneLeftThumbDistal,
	BoneLeftIndexProximal,
	BoneLeftIndexIntermediate,
	BoneLeftIndexDistal,
	BoneLeftMiddleProximal,
	BoneLeftMiddleIntermediate,
	BoneLeftMiddleDistal,
	BoneLeftRingProximal,
	BoneLeftRingIntermediate,
	BoneLeftRingDistal,
	BoneLeftLittleProximal,
	BoneLeftLittleIntermediate,
	BoneLeftLittleDistal,
	BoneRightThumbMetacarpal,
	BoneRightThumbProximal,
	BoneRightThumbDistal,
	BoneRightIndexProximal,
	BoneRightIndexIntermediate,
	BoneRightIndexDistal,
	BoneRightMiddleProximal,
	BoneRightMiddleIntermediate,
	BoneRightMiddleDistal,
	BoneRightRingProximal,
	BoneRightRingIntermediate,
	BoneRightRingDistal,
	BoneRightLittleProximal,
	BoneRightLittleIntermediate,
	BoneRightLittleDistal,
}

// ParentBone maps each bone to its parent slot in the canonical humanoid
// hierarchy, independent of any concrete character. Hips has no parent.
var ParentBone = map[BoneName]BoneName{
	BoneSpine:      BoneHips,
	BoneChest:      BoneSpine,
	BoneUpperChest: BoneChest,
	BoneNeck:       BoneUpperChest,
	BoneHead:       BoneNeck,
	BoneLeftEye:    BoneHead,
	BoneRightEye:   BoneHead,
	BoneJaw:        BoneHead,

	BoneLeftShoulder:  BoneUpperChest,
	BoneLeftUpperArm:  BoneLeftShoulder,
	BoneLeftLowerArm:  BoneLeftUpperArm,
	BoneLeftHand:      BoneLeftLowerArm,
	BoneRightShoulder: BoneUpperChest,
	BoneRightUpperArm: BoneRightShoulder,
	BoneRightLowerArm: BoneRightUpperArm,
	BoneRightHand:     BoneRightLowerArm,

	BoneLeftUpperLeg:  BoneHips,
	BoneLeftLowerLeg:  BoneLeftUpperLeg,
	BoneLeftFoot:      BoneLeftLowerLeg,
	BoneLeftToes:      BoneLeftFoot,
	BoneRightUpperLeg: BoneHips,
	BoneRightLowerLeg: BoneRightUpperLeg,
	BoneRightFoot:     BoneRightLowerLeg,
	BoneRightToes:     BoneRightFoot,

	BoneLeftThumbMetacarpal:     BoneLeftHand,
	BoneLeftThumbProximal:       BoneLeftThumbMetacarpal,
	BoneLeftThumbDistal:         BoneLeftThumbProximal,
	BoneLeftIndexProximal:       BoneLeftHand,
	BoneLeftIndexIntermediate:   BoneLeftIndexProximal,
	BoneLeftIndexDistal:         BoneLeftIndexIntermediate,
	BoneLeftMiddleProximal:      BoneLeftHand,
	BoneLeftMiddleIntermediate:  BoneLeftMiddleProximal,
	BoneLeftMiddleDistal:        BoneLeftMiddleIntermediate,
	BoneLeftRingProximal:        BoneLeftHand,
	BoneLeftRingIntermediate:    BoneLeftRingProximal,
	BoneLeftRingDistal:          BoneLeftRingIntermediate,
	BoneLeftLittleProximal:      BoneLeftHand,
	BoneLeftLittleIntermediate:  BoneLeftLittleProximal,
	BoneLeftLittleDistal:        BoneLeftLittleIntermediate,
	BoneRightThumbMetacarpal:    BoneRightHand,
	BoneRightThumbProximal:      BoneRightThumbMetacarpal,
	BoneRightThumbDistal:        BoneRightThumbProximal,
	BoneRightIndexProximal:      BoneRightHand,
	BoneRightIndexIntermediate:  BoneRightIndexProximal,
	BoneRightIndexDistal:        BoneRightIndexIntermediate,
	BoneRightMiddleProximal:     BoneRightHand,
	BoneRightMiddleIntermediate: BoneRightMiddleProximal,
	BoneRightMiddleDistal:       BoneRightMiddleIntermediate,
	BoneRightRingProximal:       BoneRightHand,
	BoneRightRingIntermediate:   BoneRightRingProximal,
	BoneRightRingDistal:         BoneRightRingIntermediate,
	BoneRightLittleProximal:     BoneRightHand,
	BoneRightLittleIntermediate: BoneRightLittleProximal,
	BoneRightLittleDistal:       BoneRightLittleIntermediate,
}

// RequiredBones is the minimum subset a definition must map. Construction
// fails if any of these is missing.
var RequiredBones = []BoneName{
	BoneHips,
	BoneSpine,
	BoneHead,
	BoneLeftUpperArm,
	BoneLeftLowerArm,
	BoneLeftHand,
	BoneRightUpperArm,
	BoneRightLowerArm,
	BoneRightHand,
	BoneLeftUpperLeg,
	BoneLeftLowerLeg,
	BoneLeftFoot,
	BoneRightUpperLeg,
	BoneRightLowerLeg,
	BoneRightFoot,
}
