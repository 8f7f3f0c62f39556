package scene

// Part tags which sub-part of a composite shape a ray hit
type Part string

const (
	PartCandleBody  Part = "candle_body"
	PartCandleFlame Part = "candle_flame"
	PartHead        Part = "head"
	PartTorso       Part = "torso"
	PartArm         Part = "arm"
	PartLeg         Part = "leg"
	PartHand        Part = "hand"
	PartFoot        Part = "foot"
)
