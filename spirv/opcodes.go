package spirv

// Op is a numeric instruction opcode, found in the low 16 bits of an
// instruction's first word.
type Op uint16

// Miscellaneous and debug instructions.
const (
	OpNop             Op = 0
	OpUndef           Op = 1
	OpSourceContinued Op = 2
	OpSource          Op = 3
	OpSourceExtension Op = 4
	OpName            Op = 5
	OpMemberName      Op = 6
	OpString          Op = 7
	OpLine            Op = 8
)

// Extension instructions.
const (
	OpExtension     Op = 10
	OpExtInstImport Op = 11
	OpExtInst       Op = 12
)

// Mode-setting instructions.
const (
	OpMemoryModel   Op = 14
	OpEntryPoint    Op = 15
	OpExecutionMode Op = 16
	OpCapability    Op = 17
)

// Type-declaration instructions.
const (
	OpTypeVoid         Op = 19
	OpTypeBool         Op = 20
	OpTypeInt          Op = 21
	OpTypeFloat        Op = 22
	OpTypeVector       Op = 23
	OpTypeMatrix       Op = 24
	OpTypeImage        Op = 25
	OpTypeSampler      Op = 26
	OpTypeSampledImage Op = 27
	OpTypeArray        Op = 28
	OpTypeRuntimeArray Op = 29
	OpTypeStruct       Op = 30
	OpTypeOpaque       Op = 31
	OpTypePointer      Op = 32
	OpTypeFunction     Op = 33
)

// Constant-creation instructions.
const (
	OpConstantTrue      Op = 41
	OpConstantFalse     Op = 42
	OpConstant          Op = 43
	OpConstantComposite Op = 44
	OpConstantNull      Op = 46
)

// Function instructions.
const (
	OpFunction          Op = 54
	OpFunctionParameter Op = 55
	OpFunctionEnd       Op = 56
	OpFunctionCall      Op = 57
)

// Memory instructions.
const (
	OpVariable    Op = 59
	OpLoad        Op = 61
	OpStore       Op = 62
	OpCopyMemory  Op = 63
	OpAccessChain Op = 65
)

// Annotation instructions.
const (
	OpDecorate       Op = 71
	OpMemberDecorate Op = 72
)

// Composite instructions.
const (
	OpVectorShuffle      Op = 79
	OpCompositeConstruct Op = 80
	OpCompositeExtract   Op = 81
)

// Image instructions.
const (
	OpSampledImage           Op = 86
	OpImageSampleImplicitLod Op = 87
	OpImageSampleExplicitLod Op = 88
)

// Arithmetic instructions.
const (
	OpSNegate Op = 126
	OpFNegate Op = 127
	OpIAdd    Op = 128
	OpFAdd    Op = 129
	OpISub    Op = 130
	OpFSub    Op = 131
	OpIMul    Op = 132
	OpFMul    Op = 133
	OpUDiv    Op = 134
	OpSDiv    Op = 135
	OpFDiv    Op = 136
	OpDot     Op = 148
)

// Relational instructions.
const (
	OpSelect    Op = 169
	OpIEqual    Op = 170
	OpINotEqual Op = 171
	OpULessThan Op = 176
	OpSLessThan Op = 177
)

// Control-flow instructions.
const (
	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255
)
