package ir

import "fmt"

// Kind identifies the shape of a property value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat
	KindToken
	KindContent
	KindUniqueID
	KindSecurityCapabilities
	KindEnum
	KindBrickColor
	KindRef
	KindBinary
	KindSharedString
	KindVector2
	KindVector3
	KindColor3
	KindColor3uint8
	KindCFrame
	KindOptionalCFrame
	KindUDim
	KindUDim2
	KindNumberRange
	KindRect2D
	KindRay
	KindFont
	KindPhysicalProperties
	KindFaces
	KindNumberSequence
	KindColorSequence
	KindUnsupported
)

var kindNames = map[Kind]string{
	KindString:               "String",
	KindBool:                 "Bool",
	KindInt32:                "Int32",
	KindInt64:                "Int64",
	KindFloat:                "Float",
	KindToken:                "Token",
	KindContent:              "Content",
	KindUniqueID:             "UniqueId",
	KindSecurityCapabilities: "SecurityCapabilities",
	KindEnum:                 "Enum",
	KindBrickColor:           "BrickColor",
	KindRef:                  "Ref",
	KindBinary:               "Binary",
	KindSharedString:         "SharedString",
	KindVector2:              "Vector2",
	KindVector3:              "Vector3",
	KindColor3:               "Color3",
	KindColor3uint8:          "Color3uint8",
	KindCFrame:               "CFrame",
	KindOptionalCFrame:       "OptionalCFrame",
	KindUDim:                 "UDim",
	KindUDim2:                "UDim2",
	KindNumberRange:          "NumberRange",
	KindRect2D:               "Rect2D",
	KindRay:                  "Ray",
	KindFont:                 "Font",
	KindPhysicalProperties:   "PhysicalProperties",
	KindFaces:                "Faces",
	KindNumberSequence:       "NumberSequence",
	KindColorSequence:        "ColorSequence",
	KindUnsupported:          "Unsupported",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := KindString; k <= KindUnsupported; k++ {
		res = append(res, k)
	}
	return res
}

// kindTags maps the document property tags onto kinds. Several tags
// alias the same kind; Value.Tag preserves the one actually read so a
// rebuilt document keeps the original spelling.
var kindTags = map[string]Kind{
	"string":                  KindString,
	"bool":                    KindBool,
	"int":                     KindInt32,
	"int64":                   KindInt64,
	"float":                   KindFloat,
	"double":                  KindFloat,
	"token":                   KindToken,
	"Content":                 KindContent,
	"UniqueId":                KindUniqueID,
	"SecurityCapabilities":    KindSecurityCapabilities,
	"Enum":                    KindEnum,
	"BrickColor":              KindBrickColor,
	"Ref":                     KindRef,
	"Reference":               KindRef,
	"BinaryString":            KindBinary,
	"ProtectedString":         KindBinary,
	"SharedString":            KindSharedString,
	"Vector2":                 KindVector2,
	"Vector3":                 KindVector3,
	"Color3":                  KindColor3,
	"Color3uint8":             KindColor3uint8,
	"CFrame":                  KindCFrame,
	"CoordinateFrame":         KindCFrame,
	"OptionalCoordinateFrame": KindOptionalCFrame,
	"UDim":                    KindUDim,
	"UDim2":                   KindUDim2,
	"NumberRange":             KindNumberRange,
	"Rect2D":                  KindRect2D,
	"Ray":                     KindRay,
	"Font":                    KindFont,
	"PhysicalProperties":      KindPhysicalProperties,
	"Faces":                   KindFaces,
	"Axes":                    KindFaces,
	"NumberSequence":          KindNumberSequence,
	"ColorSequence":           KindColorSequence,
}

// KindFromTag resolves a document property tag to its kind. The second
// result is false for tags outside the supported set.
func KindFromTag(tag string) (Kind, bool) {
	k, ok := kindTags[tag]
	return k, ok
}

// Tag returns the canonical document tag for a kind.
func (k Kind) Tag() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindToken:
		return "token"
	case KindBinary:
		return "BinaryString"
	case KindCFrame:
		return "CFrame"
	case KindOptionalCFrame:
		return "OptionalCoordinateFrame"
	default:
		return k.String()
	}
}
