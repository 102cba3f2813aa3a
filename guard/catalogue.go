package guard

// SlotType is the semantic type of one argument slot.
type SlotType uint8

// Slot types.
const (
	SlotString SlotType = iota + 1
	SlotError
	SlotInt
	SlotErrors
	SlotContext
	SlotAny
)

// String returns the slot type name.
func (t SlotType) String() string {
	switch t {
	case SlotString:
		return "string"
	case SlotError:
		return "error"
	case SlotInt:
		return "int"
	case SlotErrors:
		return "[]error"
	case SlotContext:
		return "context"
	case SlotAny:
		return "any"
	default:
		return "unknown"
	}
}

// Slot describes one argument of a guard operation and the error field it populates.
type Slot struct {
	// Name is the parameter name of the slot in the operation signature.
	Name string
	// Type is the semantic type accepted by the slot.
	Type SlotType
	// Optional reports whether the zero value is a documented default for the slot.
	Optional bool
	// Field is the exported field of the raised error that receives the slot value.
	Field string
}

// Variant describes one guard operation: the Raiser method name, the kind it
// raises and its ordered argument slots (the leading condition is implied).
type Variant struct {
	Operation string
	Kind      Kind
	Slots     []Slot
}

var (
	slotMessage   = Slot{Name: "message", Type: SlotString, Optional: true, Field: "Message"}
	slotInner     = Slot{Name: "inner", Type: SlotError, Optional: true, Field: "Inner"}
	slotParamName = Slot{Name: "paramName", Type: SlotString, Optional: true, Field: "ParamName"}
	slotFileName  = Slot{Name: "fileName", Type: SlotString, Optional: true, Field: "FileName"}
	slotClassName = Slot{Name: "className", Type: SlotString, Optional: true, Field: "ClassName"}
)

func required(slot Slot) Slot {
	slot.Optional = false
	return slot
}

func memberSlot(name string) Slot {
	return Slot{Name: name, Type: SlotString, Optional: true, Field: "MemberName"}
}

func messageInner(operation string, kind Kind) Variant {
	return Variant{Operation: operation, Kind: kind, Slots: []Slot{slotMessage, slotInner}}
}

// catalogue is ordered as the Raiser methods are declared. Slot order and
// names are a compatibility surface for callers and must not change.
var catalogue = []Variant{
	{Operation: "ArgumentNull", Kind: KindArgumentNull, Slots: []Slot{slotParamName, slotMessage}},
	{Operation: "ArgumentNullWrap", Kind: KindArgumentNull, Slots: []Slot{required(slotMessage), required(slotInner)}},
	{Operation: "Argument", Kind: KindArgument, Slots: []Slot{slotMessage, slotParamName, slotInner}},
	{
		Operation: "ArgumentOutOfRange",
		Kind:      KindArgumentOutOfRange,
		Slots: []Slot{
			slotParamName,
			{Name: "actualValue", Type: SlotAny, Optional: true, Field: "ActualValue"},
			slotMessage,
		},
	},
	{Operation: "ArgumentOutOfRangeWrap", Kind: KindArgumentOutOfRange, Slots: []Slot{required(slotMessage), required(slotInner)}},
	messageInner("InvalidCast", KindInvalidCast),
	{
		Operation: "InvalidCastCode",
		Kind:      KindInvalidCast,
		Slots:     []Slot{required(slotMessage), {Name: "code", Type: SlotInt, Field: "Code"}},
	},
	{
		Operation: "Aggregate",
		Kind:      KindAggregate,
		Slots:     []Slot{slotMessage, {Name: "errs", Type: SlotErrors, Optional: true, Field: "Errors"}},
	},
	{Operation: "FileNotFound", Kind: KindFileNotFound, Slots: []Slot{slotMessage, slotFileName, slotInner}},
	{Operation: "FileLoad", Kind: KindFileLoad, Slots: []Slot{slotMessage, slotFileName, slotInner}},
	messageInner("TaskCanceled", KindTaskCanceled),
	{
		Operation: "OperationCanceled",
		Kind:      KindOperationCanceled,
		Slots: []Slot{
			slotMessage,
			slotInner,
			{Name: "token", Type: SlotContext, Optional: true, Field: "Context"},
		},
	},
	messageInner("General", KindGeneral),
	messageInner("InvalidOperation", KindInvalidOperation),
	messageInner("InvalidData", KindInvalidData),
	messageInner("IndexOutOfRange", KindIndexOutOfRange),
	messageInner("Format", KindFormat),
	messageInner("NullReference", KindNullReference),
	messageInner("NotImplemented", KindNotImplemented),
	messageInner("NotSupported", KindNotSupported),
	messageInner("Timeout", KindTimeout),
	messageInner("KeyNotFound", KindKeyNotFound),
	messageInner("UnauthorizedAccess", KindUnauthorizedAccess),
	messageInner("AmbiguousMatch", KindAmbiguousMatch),
	messageInner("TypeLoad", KindTypeLoad),
	messageInner("DLLNotFound", KindDLLNotFound),
	messageInner("DirectoryNotFound", KindDirectoryNotFound),
	messageInner("PathTooLong", KindPathTooLong),
	{Operation: "MissingMember", Kind: KindMissingMember, Slots: []Slot{slotClassName, memberSlot("memberName")}},
	{Operation: "MissingMemberWrap", Kind: KindMissingMember, Slots: []Slot{required(slotMessage), required(slotInner)}},
	{Operation: "MissingField", Kind: KindMissingField, Slots: []Slot{slotClassName, memberSlot("fieldName")}},
	messageInner("MissingFieldWrap", KindMissingField),
	{Operation: "MissingMethod", Kind: KindMissingMethod, Slots: []Slot{slotClassName, memberSlot("methodName")}},
	messageInner("MissingMethodWrap", KindMissingMethod),
	messageInner("InvalidCredential", KindInvalidCredential),
	messageInner("Authentication", KindAuthentication),
	messageInner("DriveNotFound", KindDriveNotFound),
	messageInner("Serialization", KindSerialization),
}

// Variants returns a copy of the catalogue, one entry per Raiser operation.
func Variants() []Variant {
	out := make([]Variant, len(catalogue))
	for i, variant := range catalogue {
		variant.Slots = append([]Slot(nil), variant.Slots...)
		out[i] = variant
	}

	return out
}

// Lookup returns the catalogue entry for a Raiser operation name.
func Lookup(operation string) (Variant, bool) {
	for _, variant := range catalogue {
		if variant.Operation == operation {
			variant.Slots = append([]Slot(nil), variant.Slots...)
			return variant, true
		}
	}

	return Variant{}, false
}
