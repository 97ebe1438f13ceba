package spirv

// SourceLanguage identifies the source language a module was translated from.
type SourceLanguage uint32

const (
	SourceLanguageUnknown   SourceLanguage = 0
	SourceLanguageESSL      SourceLanguage = 1
	SourceLanguageGLSL      SourceLanguage = 2
	SourceLanguageOpenCLC   SourceLanguage = 3
	SourceLanguageOpenCLCPP SourceLanguage = 4
	SourceLanguageHLSL      SourceLanguage = 5
)

// ExecutionModel identifies the pipeline stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// AddressingModel selects the memory addressing scheme of a module.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel selects the memory consistency model of a module.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
)

// ExecutionMode declares an execution mode for an entry point.
// Some modes mandate extra literal operands (e.g. LocalSize carries three).
type ExecutionMode uint32

const (
	ExecutionModeInvocations        ExecutionMode = 0
	ExecutionModePixelCenterInteger ExecutionMode = 6
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
	ExecutionModeLocalSizeHint      ExecutionMode = 18
	ExecutionModeOutputVertices     ExecutionMode = 26
)

// StorageClass identifies the storage class of a pointer or variable.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim is the dimensionality of an image type.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// ImageFormat is the texel format of an image type.
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = 0
	ImageFormatRgba32f ImageFormat = 1
	ImageFormatRgba16f ImageFormat = 2
	ImageFormatR32f    ImageFormat = 3
	ImageFormatRgba8   ImageFormat = 4
)

// AccessQualifier restricts how a kernel object may be accessed.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

// LinkageType declares whether a decorated object is exported or imported.
type LinkageType uint32

const (
	LinkageTypeExport LinkageType = 0
	LinkageTypeImport LinkageType = 1
)

// Decoration annotates an instruction result with extra semantics.
// Several decorations mandate extra operands (e.g. Location carries a
// literal, BuiltIn carries a BuiltIn enumerant).
type Decoration uint32

const (
	DecorationRelaxedPrecision  Decoration = 0
	DecorationSpecID            Decoration = 1
	DecorationBlock             Decoration = 2
	DecorationBufferBlock       Decoration = 3
	DecorationRowMajor          Decoration = 4
	DecorationColMajor          Decoration = 5
	DecorationArrayStride       Decoration = 6
	DecorationMatrixStride      Decoration = 7
	DecorationBuiltIn           Decoration = 11
	DecorationNoPerspective     Decoration = 13
	DecorationFlat              Decoration = 14
	DecorationPatch             Decoration = 15
	DecorationCentroid          Decoration = 16
	DecorationRestrict          Decoration = 19
	DecorationAliased           Decoration = 20
	DecorationVolatile          Decoration = 21
	DecorationCoherent          Decoration = 23
	DecorationNonWritable       Decoration = 24
	DecorationNonReadable       Decoration = 25
	DecorationUniform           Decoration = 26
	DecorationLocation          Decoration = 30
	DecorationComponent         Decoration = 31
	DecorationIndex             Decoration = 32
	DecorationBinding           Decoration = 33
	DecorationDescriptorSet     Decoration = 34
	DecorationOffset            Decoration = 35
	DecorationLinkageAttributes Decoration = 41
)

// BuiltIn identifies a pipeline built-in variable.
type BuiltIn uint32

const (
	BuiltInPosition           BuiltIn = 0
	BuiltInPointSize          BuiltIn = 1
	BuiltInClipDistance       BuiltIn = 3
	BuiltInCullDistance       BuiltIn = 4
	BuiltInVertexID           BuiltIn = 5
	BuiltInInstanceID         BuiltIn = 6
	BuiltInFragCoord          BuiltIn = 15
	BuiltInFrontFacing        BuiltIn = 17
	BuiltInNumWorkgroups      BuiltIn = 24
	BuiltInWorkgroupSize      BuiltIn = 25
	BuiltInLocalInvocationID  BuiltIn = 27
	BuiltInGlobalInvocationID BuiltIn = 28
	BuiltInVertexIndex        BuiltIn = 42
	BuiltInInstanceIndex      BuiltIn = 43
)

// Capability declares a feature used by a module.
type Capability uint32

const (
	CapabilityMatrix       Capability = 0
	CapabilityShader       Capability = 1
	CapabilityGeometry     Capability = 2
	CapabilityTessellation Capability = 3
	CapabilityAddresses    Capability = 4
	CapabilityLinkage      Capability = 5
	CapabilityKernel       Capability = 6
	CapabilityFloat64      Capability = 10
	CapabilityInt64        Capability = 11
	CapabilityInt16        Capability = 22
)

// ImageOperands is a bit set refining an image access. Each set flag may
// mandate extra identifier operands, in flag value order.
type ImageOperands uint32

const (
	ImageOperandsBias         ImageOperands = 0x01
	ImageOperandsLod          ImageOperands = 0x02
	ImageOperandsGrad         ImageOperands = 0x04
	ImageOperandsConstOffset  ImageOperands = 0x08
	ImageOperandsOffset       ImageOperands = 0x10
	ImageOperandsConstOffsets ImageOperands = 0x20
	ImageOperandsSample       ImageOperands = 0x40
	ImageOperandsMinLod       ImageOperands = 0x80
)

// FPFastMathMode is a bit set of fast-math relaxations.
type FPFastMathMode uint32

const (
	FPFastMathModeNotNaN     FPFastMathMode = 0x01
	FPFastMathModeNotInf     FPFastMathMode = 0x02
	FPFastMathModeNSZ        FPFastMathMode = 0x04
	FPFastMathModeAllowRecip FPFastMathMode = 0x08
	FPFastMathModeFast       FPFastMathMode = 0x10
)

// SelectionControl is a bit set of selection-construct hints.
type SelectionControl uint32

const (
	SelectionControlFlatten     SelectionControl = 0x01
	SelectionControlDontFlatten SelectionControl = 0x02
)

// LoopControl is a bit set of loop-construct hints. DependencyLength
// mandates a literal operand.
type LoopControl uint32

const (
	LoopControlUnroll             LoopControl = 0x01
	LoopControlDontUnroll         LoopControl = 0x02
	LoopControlDependencyInfinite LoopControl = 0x04
	LoopControlDependencyLength   LoopControl = 0x08
)

// FunctionControl is a bit set of function hints.
type FunctionControl uint32

const (
	FunctionControlInline     FunctionControl = 0x01
	FunctionControlDontInline FunctionControl = 0x02
	FunctionControlPure       FunctionControl = 0x04
	FunctionControlConst      FunctionControl = 0x08
)

// MemoryAccess is a bit set refining a memory access. Aligned mandates a
// literal alignment operand.
type MemoryAccess uint32

const (
	MemoryAccessVolatile    MemoryAccess = 0x01
	MemoryAccessAligned     MemoryAccess = 0x02
	MemoryAccessNontemporal MemoryAccess = 0x04
)
