package grammar

import (
	"strconv"

	"github.com/AlexxNica/rspirv/spirv"
)

// OperandKind names one logical operand kind from the SPIR-V grammar.
type OperandKind int

const (
	// Identifier kinds.
	IDResultType OperandKind = iota
	IDResult
	IDRef

	// Literal kinds.
	LiteralInteger
	LiteralString
	LiteralContextDependentNumber
	LiteralExtInstInteger

	// Composite (pair) kinds.
	PairLiteralIntegerIDRef
	PairIDRefLiteralInteger
	PairIDRefIDRef

	// Bit-enum kinds.
	ImageOperands
	FPFastMathMode
	SelectionControl
	LoopControl
	FunctionControl
	MemoryAccess

	// Value-enum kinds.
	SourceLanguage
	ExecutionModel
	AddressingModel
	MemoryModel
	ExecutionMode
	StorageClass
	Dim
	ImageFormat
	AccessQualifier
	LinkageType
	Decoration
	BuiltIn
	Capability
)

// String returns the grammar name of the kind.
func (k OperandKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "OperandKind(" + strconv.Itoa(int(k)) + ")"
}

var kindNames = [...]string{
	IDResultType:                  "IdResultType",
	IDResult:                      "IdResult",
	IDRef:                         "IdRef",
	LiteralInteger:                "LiteralInteger",
	LiteralString:                 "LiteralString",
	LiteralContextDependentNumber: "LiteralContextDependentNumber",
	LiteralExtInstInteger:         "LiteralExtInstInteger",
	PairLiteralIntegerIDRef:       "PairLiteralIntegerIdRef",
	PairIDRefLiteralInteger:       "PairIdRefLiteralInteger",
	PairIDRefIDRef:                "PairIdRefIdRef",
	ImageOperands:                 "ImageOperands",
	FPFastMathMode:                "FPFastMathMode",
	SelectionControl:              "SelectionControl",
	LoopControl:                   "LoopControl",
	FunctionControl:               "FunctionControl",
	MemoryAccess:                  "MemoryAccess",
	SourceLanguage:                "SourceLanguage",
	ExecutionModel:                "ExecutionModel",
	AddressingModel:               "AddressingModel",
	MemoryModel:                   "MemoryModel",
	ExecutionMode:                 "ExecutionMode",
	StorageClass:                  "StorageClass",
	Dim:                           "Dim",
	ImageFormat:                   "ImageFormat",
	AccessQualifier:               "AccessQualifier",
	LinkageType:                   "LinkageType",
	Decoration:                    "Decoration",
	BuiltIn:                       "BuiltIn",
	Capability:                    "Capability",
}

func params(kinds ...OperandKind) []OperandKind { return kinds }

// The enumerant tables reference the typed constants in the spirv package so
// the two surfaces cannot drift apart.
var kinds = []KindDef{
	{Kind: IDResultType, Category: CategoryID},
	{Kind: IDResult, Category: CategoryID},
	{Kind: IDRef, Category: CategoryID},

	{Kind: LiteralInteger, Category: CategoryLiteralNumber},
	{Kind: LiteralString, Category: CategoryLiteralString},
	// The width depends on the type of the enclosing instruction's result:
	// the parser tracks numeric type declarations and reads one or two words
	// accordingly.
	{Kind: LiteralContextDependentNumber, Category: CategoryLiteralNumber},
	{Kind: LiteralExtInstInteger, Category: CategoryLiteralNumber},

	{Kind: PairLiteralIntegerIDRef, Category: CategoryComposite,
		Bases: []OperandKind{LiteralInteger, IDRef}},
	{Kind: PairIDRefLiteralInteger, Category: CategoryComposite,
		Bases: []OperandKind{IDRef, LiteralInteger}},
	{Kind: PairIDRefIDRef, Category: CategoryComposite,
		Bases: []OperandKind{IDRef, IDRef}},

	{Kind: ImageOperands, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "Bias", Value: uint32(spirv.ImageOperandsBias), Parameters: params(IDRef)},
		{Symbol: "Lod", Value: uint32(spirv.ImageOperandsLod), Parameters: params(IDRef)},
		{Symbol: "Grad", Value: uint32(spirv.ImageOperandsGrad), Parameters: params(IDRef, IDRef)},
		{Symbol: "ConstOffset", Value: uint32(spirv.ImageOperandsConstOffset), Parameters: params(IDRef)},
		{Symbol: "Offset", Value: uint32(spirv.ImageOperandsOffset), Parameters: params(IDRef)},
		{Symbol: "ConstOffsets", Value: uint32(spirv.ImageOperandsConstOffsets), Parameters: params(IDRef)},
		{Symbol: "Sample", Value: uint32(spirv.ImageOperandsSample), Parameters: params(IDRef)},
		{Symbol: "MinLod", Value: uint32(spirv.ImageOperandsMinLod), Parameters: params(IDRef)},
	}},
	{Kind: FPFastMathMode, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "NotNaN", Value: uint32(spirv.FPFastMathModeNotNaN)},
		{Symbol: "NotInf", Value: uint32(spirv.FPFastMathModeNotInf)},
		{Symbol: "NSZ", Value: uint32(spirv.FPFastMathModeNSZ)},
		{Symbol: "AllowRecip", Value: uint32(spirv.FPFastMathModeAllowRecip)},
		{Symbol: "Fast", Value: uint32(spirv.FPFastMathModeFast)},
	}},
	{Kind: SelectionControl, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "Flatten", Value: uint32(spirv.SelectionControlFlatten)},
		{Symbol: "DontFlatten", Value: uint32(spirv.SelectionControlDontFlatten)},
	}},
	{Kind: LoopControl, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "Unroll", Value: uint32(spirv.LoopControlUnroll)},
		{Symbol: "DontUnroll", Value: uint32(spirv.LoopControlDontUnroll)},
		{Symbol: "DependencyInfinite", Value: uint32(spirv.LoopControlDependencyInfinite)},
		{Symbol: "DependencyLength", Value: uint32(spirv.LoopControlDependencyLength),
			Parameters: params(LiteralInteger)},
	}},
	{Kind: FunctionControl, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "Inline", Value: uint32(spirv.FunctionControlInline)},
		{Symbol: "DontInline", Value: uint32(spirv.FunctionControlDontInline)},
		{Symbol: "Pure", Value: uint32(spirv.FunctionControlPure)},
		{Symbol: "Const", Value: uint32(spirv.FunctionControlConst)},
	}},
	{Kind: MemoryAccess, Category: CategoryBitEnum, Enumerants: []Enumerant{
		{Symbol: "Volatile", Value: uint32(spirv.MemoryAccessVolatile)},
		{Symbol: "Aligned", Value: uint32(spirv.MemoryAccessAligned),
			Parameters: params(LiteralInteger)},
		{Symbol: "Nontemporal", Value: uint32(spirv.MemoryAccessNontemporal)},
	}},

	{Kind: SourceLanguage, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Unknown", Value: uint32(spirv.SourceLanguageUnknown)},
		{Symbol: "ESSL", Value: uint32(spirv.SourceLanguageESSL)},
		{Symbol: "GLSL", Value: uint32(spirv.SourceLanguageGLSL)},
		{Symbol: "OpenCL_C", Value: uint32(spirv.SourceLanguageOpenCLC)},
		{Symbol: "OpenCL_CPP", Value: uint32(spirv.SourceLanguageOpenCLCPP)},
		{Symbol: "HLSL", Value: uint32(spirv.SourceLanguageHLSL)},
	}},
	{Kind: ExecutionModel, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Vertex", Value: uint32(spirv.ExecutionModelVertex)},
		{Symbol: "TessellationControl", Value: uint32(spirv.ExecutionModelTessellationControl)},
		{Symbol: "TessellationEvaluation", Value: uint32(spirv.ExecutionModelTessellationEvaluation)},
		{Symbol: "Geometry", Value: uint32(spirv.ExecutionModelGeometry)},
		{Symbol: "Fragment", Value: uint32(spirv.ExecutionModelFragment)},
		{Symbol: "GLCompute", Value: uint32(spirv.ExecutionModelGLCompute)},
		{Symbol: "Kernel", Value: uint32(spirv.ExecutionModelKernel)},
	}},
	{Kind: AddressingModel, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Logical", Value: uint32(spirv.AddressingModelLogical)},
		{Symbol: "Physical32", Value: uint32(spirv.AddressingModelPhysical32)},
		{Symbol: "Physical64", Value: uint32(spirv.AddressingModelPhysical64)},
	}},
	{Kind: MemoryModel, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Simple", Value: uint32(spirv.MemoryModelSimple)},
		{Symbol: "GLSL450", Value: uint32(spirv.MemoryModelGLSL450)},
		{Symbol: "OpenCL", Value: uint32(spirv.MemoryModelOpenCL)},
	}},
	{Kind: ExecutionMode, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Invocations", Value: uint32(spirv.ExecutionModeInvocations),
			Parameters: params(LiteralInteger)},
		{Symbol: "PixelCenterInteger", Value: uint32(spirv.ExecutionModePixelCenterInteger)},
		{Symbol: "OriginUpperLeft", Value: uint32(spirv.ExecutionModeOriginUpperLeft)},
		{Symbol: "OriginLowerLeft", Value: uint32(spirv.ExecutionModeOriginLowerLeft)},
		{Symbol: "EarlyFragmentTests", Value: uint32(spirv.ExecutionModeEarlyFragmentTests)},
		{Symbol: "DepthReplacing", Value: uint32(spirv.ExecutionModeDepthReplacing)},
		{Symbol: "LocalSize", Value: uint32(spirv.ExecutionModeLocalSize),
			Parameters: params(LiteralInteger, LiteralInteger, LiteralInteger)},
		{Symbol: "LocalSizeHint", Value: uint32(spirv.ExecutionModeLocalSizeHint),
			Parameters: params(LiteralInteger, LiteralInteger, LiteralInteger)},
		{Symbol: "OutputVertices", Value: uint32(spirv.ExecutionModeOutputVertices),
			Parameters: params(LiteralInteger)},
	}},
	{Kind: StorageClass, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "UniformConstant", Value: uint32(spirv.StorageClassUniformConstant)},
		{Symbol: "Input", Value: uint32(spirv.StorageClassInput)},
		{Symbol: "Uniform", Value: uint32(spirv.StorageClassUniform)},
		{Symbol: "Output", Value: uint32(spirv.StorageClassOutput)},
		{Symbol: "Workgroup", Value: uint32(spirv.StorageClassWorkgroup)},
		{Symbol: "CrossWorkgroup", Value: uint32(spirv.StorageClassCrossWorkgroup)},
		{Symbol: "Private", Value: uint32(spirv.StorageClassPrivate)},
		{Symbol: "Function", Value: uint32(spirv.StorageClassFunction)},
		{Symbol: "Generic", Value: uint32(spirv.StorageClassGeneric)},
		{Symbol: "PushConstant", Value: uint32(spirv.StorageClassPushConstant)},
		{Symbol: "AtomicCounter", Value: uint32(spirv.StorageClassAtomicCounter)},
		{Symbol: "Image", Value: uint32(spirv.StorageClassImage)},
		{Symbol: "StorageBuffer", Value: uint32(spirv.StorageClassStorageBuffer)},
	}},
	{Kind: Dim, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "1D", Value: uint32(spirv.Dim1D)},
		{Symbol: "2D", Value: uint32(spirv.Dim2D)},
		{Symbol: "3D", Value: uint32(spirv.Dim3D)},
		{Symbol: "Cube", Value: uint32(spirv.DimCube)},
		{Symbol: "Rect", Value: uint32(spirv.DimRect)},
		{Symbol: "Buffer", Value: uint32(spirv.DimBuffer)},
		{Symbol: "SubpassData", Value: uint32(spirv.DimSubpassData)},
	}},
	{Kind: ImageFormat, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Unknown", Value: uint32(spirv.ImageFormatUnknown)},
		{Symbol: "Rgba32f", Value: uint32(spirv.ImageFormatRgba32f)},
		{Symbol: "Rgba16f", Value: uint32(spirv.ImageFormatRgba16f)},
		{Symbol: "R32f", Value: uint32(spirv.ImageFormatR32f)},
		{Symbol: "Rgba8", Value: uint32(spirv.ImageFormatRgba8)},
	}},
	{Kind: AccessQualifier, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "ReadOnly", Value: uint32(spirv.AccessQualifierReadOnly)},
		{Symbol: "WriteOnly", Value: uint32(spirv.AccessQualifierWriteOnly)},
		{Symbol: "ReadWrite", Value: uint32(spirv.AccessQualifierReadWrite)},
	}},
	{Kind: LinkageType, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Export", Value: uint32(spirv.LinkageTypeExport)},
		{Symbol: "Import", Value: uint32(spirv.LinkageTypeImport)},
	}},
	{Kind: Decoration, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "RelaxedPrecision", Value: uint32(spirv.DecorationRelaxedPrecision)},
		{Symbol: "SpecId", Value: uint32(spirv.DecorationSpecID),
			Parameters: params(LiteralInteger)},
		{Symbol: "Block", Value: uint32(spirv.DecorationBlock)},
		{Symbol: "BufferBlock", Value: uint32(spirv.DecorationBufferBlock)},
		{Symbol: "RowMajor", Value: uint32(spirv.DecorationRowMajor)},
		{Symbol: "ColMajor", Value: uint32(spirv.DecorationColMajor)},
		{Symbol: "ArrayStride", Value: uint32(spirv.DecorationArrayStride),
			Parameters: params(LiteralInteger)},
		{Symbol: "MatrixStride", Value: uint32(spirv.DecorationMatrixStride),
			Parameters: params(LiteralInteger)},
		{Symbol: "BuiltIn", Value: uint32(spirv.DecorationBuiltIn),
			Parameters: params(BuiltIn)},
		{Symbol: "NoPerspective", Value: uint32(spirv.DecorationNoPerspective)},
		{Symbol: "Flat", Value: uint32(spirv.DecorationFlat)},
		{Symbol: "Patch", Value: uint32(spirv.DecorationPatch)},
		{Symbol: "Centroid", Value: uint32(spirv.DecorationCentroid)},
		{Symbol: "Restrict", Value: uint32(spirv.DecorationRestrict)},
		{Symbol: "Aliased", Value: uint32(spirv.DecorationAliased)},
		{Symbol: "Volatile", Value: uint32(spirv.DecorationVolatile)},
		{Symbol: "Coherent", Value: uint32(spirv.DecorationCoherent)},
		{Symbol: "NonWritable", Value: uint32(spirv.DecorationNonWritable)},
		{Symbol: "NonReadable", Value: uint32(spirv.DecorationNonReadable)},
		{Symbol: "Uniform", Value: uint32(spirv.DecorationUniform)},
		{Symbol: "Location", Value: uint32(spirv.DecorationLocation),
			Parameters: params(LiteralInteger)},
		{Symbol: "Component", Value: uint32(spirv.DecorationComponent),
			Parameters: params(LiteralInteger)},
		{Symbol: "Index", Value: uint32(spirv.DecorationIndex),
			Parameters: params(LiteralInteger)},
		{Symbol: "Binding", Value: uint32(spirv.DecorationBinding),
			Parameters: params(LiteralInteger)},
		{Symbol: "DescriptorSet", Value: uint32(spirv.DecorationDescriptorSet),
			Parameters: params(LiteralInteger)},
		{Symbol: "Offset", Value: uint32(spirv.DecorationOffset),
			Parameters: params(LiteralInteger)},
		{Symbol: "LinkageAttributes", Value: uint32(spirv.DecorationLinkageAttributes),
			Parameters: params(LiteralString, LinkageType)},
	}},
	{Kind: BuiltIn, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Position", Value: uint32(spirv.BuiltInPosition)},
		{Symbol: "PointSize", Value: uint32(spirv.BuiltInPointSize)},
		{Symbol: "ClipDistance", Value: uint32(spirv.BuiltInClipDistance)},
		{Symbol: "CullDistance", Value: uint32(spirv.BuiltInCullDistance)},
		{Symbol: "VertexId", Value: uint32(spirv.BuiltInVertexID)},
		{Symbol: "InstanceId", Value: uint32(spirv.BuiltInInstanceID)},
		{Symbol: "FragCoord", Value: uint32(spirv.BuiltInFragCoord)},
		{Symbol: "FrontFacing", Value: uint32(spirv.BuiltInFrontFacing)},
		{Symbol: "NumWorkgroups", Value: uint32(spirv.BuiltInNumWorkgroups)},
		{Symbol: "WorkgroupSize", Value: uint32(spirv.BuiltInWorkgroupSize)},
		{Symbol: "LocalInvocationId", Value: uint32(spirv.BuiltInLocalInvocationID)},
		{Symbol: "GlobalInvocationId", Value: uint32(spirv.BuiltInGlobalInvocationID)},
		{Symbol: "VertexIndex", Value: uint32(spirv.BuiltInVertexIndex)},
		{Symbol: "InstanceIndex", Value: uint32(spirv.BuiltInInstanceIndex)},
	}},
	{Kind: Capability, Category: CategoryValueEnum, Enumerants: []Enumerant{
		{Symbol: "Matrix", Value: uint32(spirv.CapabilityMatrix)},
		{Symbol: "Shader", Value: uint32(spirv.CapabilityShader)},
		{Symbol: "Geometry", Value: uint32(spirv.CapabilityGeometry)},
		{Symbol: "Tessellation", Value: uint32(spirv.CapabilityTessellation)},
		{Symbol: "Addresses", Value: uint32(spirv.CapabilityAddresses)},
		{Symbol: "Linkage", Value: uint32(spirv.CapabilityLinkage)},
		{Symbol: "Kernel", Value: uint32(spirv.CapabilityKernel)},
		{Symbol: "Float64", Value: uint32(spirv.CapabilityFloat64)},
		{Symbol: "Int64", Value: uint32(spirv.CapabilityInt64)},
		{Symbol: "Int16", Value: uint32(spirv.CapabilityInt16)},
	}},
}
