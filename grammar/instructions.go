package grammar

import "github.com/AlexxNica/rspirv/spirv"

func one(k OperandKind) LogicalOperand {
	return LogicalOperand{Kind: k, Quantifier: One}
}

func opt(k OperandKind) LogicalOperand {
	return LogicalOperand{Kind: k, Quantifier: ZeroOrOne}
}

func rep(k OperandKind) LogicalOperand {
	return LogicalOperand{Kind: k, Quantifier: ZeroOrMore}
}

func operands(ops ...LogicalOperand) []LogicalOperand { return ops }

var instructions = []Instruction{
	{Opcode: spirv.OpNop, Name: "OpNop"},
	{Opcode: spirv.OpUndef, Name: "OpUndef",
		Operands: operands(one(IDResultType), one(IDResult))},
	{Opcode: spirv.OpSourceContinued, Name: "OpSourceContinued",
		Operands: operands(one(LiteralString))},
	{Opcode: spirv.OpSource, Name: "OpSource",
		Operands: operands(one(SourceLanguage), one(LiteralInteger),
			opt(IDRef), opt(LiteralString))},
	{Opcode: spirv.OpSourceExtension, Name: "OpSourceExtension",
		Operands: operands(one(LiteralString))},
	{Opcode: spirv.OpName, Name: "OpName",
		Operands: operands(one(IDRef), one(LiteralString))},
	{Opcode: spirv.OpMemberName, Name: "OpMemberName",
		Operands: operands(one(IDRef), one(LiteralInteger), one(LiteralString))},
	{Opcode: spirv.OpString, Name: "OpString",
		Operands: operands(one(IDResult), one(LiteralString))},
	{Opcode: spirv.OpLine, Name: "OpLine",
		Operands: operands(one(IDRef), one(LiteralInteger), one(LiteralInteger))},

	{Opcode: spirv.OpExtension, Name: "OpExtension",
		Operands: operands(one(LiteralString))},
	{Opcode: spirv.OpExtInstImport, Name: "OpExtInstImport",
		Operands: operands(one(IDResult), one(LiteralString))},
	{Opcode: spirv.OpExtInst, Name: "OpExtInst",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(LiteralExtInstInteger), rep(IDRef))},

	{Opcode: spirv.OpMemoryModel, Name: "OpMemoryModel",
		Operands: operands(one(AddressingModel), one(MemoryModel))},
	{Opcode: spirv.OpEntryPoint, Name: "OpEntryPoint",
		Operands: operands(one(ExecutionModel), one(IDRef),
			one(LiteralString), rep(IDRef))},
	{Opcode: spirv.OpExecutionMode, Name: "OpExecutionMode",
		Operands: operands(one(IDRef), one(ExecutionMode))},
	{Opcode: spirv.OpCapability, Name: "OpCapability",
		Operands: operands(one(Capability))},

	{Opcode: spirv.OpTypeVoid, Name: "OpTypeVoid",
		Operands: operands(one(IDResult))},
	{Opcode: spirv.OpTypeBool, Name: "OpTypeBool",
		Operands: operands(one(IDResult))},
	{Opcode: spirv.OpTypeInt, Name: "OpTypeInt",
		Operands: operands(one(IDResult), one(LiteralInteger), one(LiteralInteger))},
	{Opcode: spirv.OpTypeFloat, Name: "OpTypeFloat",
		Operands: operands(one(IDResult), one(LiteralInteger))},
	{Opcode: spirv.OpTypeVector, Name: "OpTypeVector",
		Operands: operands(one(IDResult), one(IDRef), one(LiteralInteger))},
	{Opcode: spirv.OpTypeMatrix, Name: "OpTypeMatrix",
		Operands: operands(one(IDResult), one(IDRef), one(LiteralInteger))},
	{Opcode: spirv.OpTypeImage, Name: "OpTypeImage",
		Operands: operands(one(IDResult), one(IDRef), one(Dim),
			one(LiteralInteger), one(LiteralInteger), one(LiteralInteger),
			one(LiteralInteger), one(ImageFormat), opt(AccessQualifier))},
	{Opcode: spirv.OpTypeSampler, Name: "OpTypeSampler",
		Operands: operands(one(IDResult))},
	{Opcode: spirv.OpTypeSampledImage, Name: "OpTypeSampledImage",
		Operands: operands(one(IDResult), one(IDRef))},
	{Opcode: spirv.OpTypeArray, Name: "OpTypeArray",
		Operands: operands(one(IDResult), one(IDRef), one(IDRef))},
	{Opcode: spirv.OpTypeRuntimeArray, Name: "OpTypeRuntimeArray",
		Operands: operands(one(IDResult), one(IDRef))},
	{Opcode: spirv.OpTypeStruct, Name: "OpTypeStruct",
		Operands: operands(one(IDResult), rep(IDRef))},
	{Opcode: spirv.OpTypeOpaque, Name: "OpTypeOpaque",
		Operands: operands(one(IDResult), one(LiteralString))},
	{Opcode: spirv.OpTypePointer, Name: "OpTypePointer",
		Operands: operands(one(IDResult), one(StorageClass), one(IDRef))},
	{Opcode: spirv.OpTypeFunction, Name: "OpTypeFunction",
		Operands: operands(one(IDResult), one(IDRef), rep(IDRef))},

	{Opcode: spirv.OpConstantTrue, Name: "OpConstantTrue",
		Operands: operands(one(IDResultType), one(IDResult))},
	{Opcode: spirv.OpConstantFalse, Name: "OpConstantFalse",
		Operands: operands(one(IDResultType), one(IDResult))},
	{Opcode: spirv.OpConstant, Name: "OpConstant",
		Operands: operands(one(IDResultType), one(IDResult),
			one(LiteralContextDependentNumber))},
	{Opcode: spirv.OpConstantComposite, Name: "OpConstantComposite",
		Operands: operands(one(IDResultType), one(IDResult), rep(IDRef))},
	{Opcode: spirv.OpConstantNull, Name: "OpConstantNull",
		Operands: operands(one(IDResultType), one(IDResult))},

	{Opcode: spirv.OpFunction, Name: "OpFunction",
		Operands: operands(one(IDResultType), one(IDResult),
			one(FunctionControl), one(IDRef))},
	{Opcode: spirv.OpFunctionParameter, Name: "OpFunctionParameter",
		Operands: operands(one(IDResultType), one(IDResult))},
	{Opcode: spirv.OpFunctionEnd, Name: "OpFunctionEnd"},
	{Opcode: spirv.OpFunctionCall, Name: "OpFunctionCall",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			rep(IDRef))},

	{Opcode: spirv.OpVariable, Name: "OpVariable",
		Operands: operands(one(IDResultType), one(IDResult),
			one(StorageClass), opt(IDRef))},
	{Opcode: spirv.OpLoad, Name: "OpLoad",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			opt(MemoryAccess))},
	{Opcode: spirv.OpStore, Name: "OpStore",
		Operands: operands(one(IDRef), one(IDRef), opt(MemoryAccess))},
	{Opcode: spirv.OpCopyMemory, Name: "OpCopyMemory",
		Operands: operands(one(IDRef), one(IDRef), opt(MemoryAccess))},
	{Opcode: spirv.OpAccessChain, Name: "OpAccessChain",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			rep(IDRef))},

	{Opcode: spirv.OpDecorate, Name: "OpDecorate",
		Operands: operands(one(IDRef), one(Decoration))},
	{Opcode: spirv.OpMemberDecorate, Name: "OpMemberDecorate",
		Operands: operands(one(IDRef), one(LiteralInteger), one(Decoration))},

	{Opcode: spirv.OpVectorShuffle, Name: "OpVectorShuffle",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(IDRef), rep(LiteralInteger))},
	{Opcode: spirv.OpCompositeConstruct, Name: "OpCompositeConstruct",
		Operands: operands(one(IDResultType), one(IDResult), rep(IDRef))},
	{Opcode: spirv.OpCompositeExtract, Name: "OpCompositeExtract",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			rep(LiteralInteger))},

	{Opcode: spirv.OpSampledImage, Name: "OpSampledImage",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(IDRef))},
	{Opcode: spirv.OpImageSampleImplicitLod, Name: "OpImageSampleImplicitLod",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(IDRef), opt(ImageOperands))},
	{Opcode: spirv.OpImageSampleExplicitLod, Name: "OpImageSampleExplicitLod",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(IDRef), one(ImageOperands))},

	{Opcode: spirv.OpSNegate, Name: "OpSNegate",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef))},
	{Opcode: spirv.OpFNegate, Name: "OpFNegate",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef))},
	{Opcode: spirv.OpIAdd, Name: "OpIAdd", Operands: binaryOp()},
	{Opcode: spirv.OpFAdd, Name: "OpFAdd", Operands: binaryOp()},
	{Opcode: spirv.OpISub, Name: "OpISub", Operands: binaryOp()},
	{Opcode: spirv.OpFSub, Name: "OpFSub", Operands: binaryOp()},
	{Opcode: spirv.OpIMul, Name: "OpIMul", Operands: binaryOp()},
	{Opcode: spirv.OpFMul, Name: "OpFMul", Operands: binaryOp()},
	{Opcode: spirv.OpUDiv, Name: "OpUDiv", Operands: binaryOp()},
	{Opcode: spirv.OpSDiv, Name: "OpSDiv", Operands: binaryOp()},
	{Opcode: spirv.OpFDiv, Name: "OpFDiv", Operands: binaryOp()},
	{Opcode: spirv.OpDot, Name: "OpDot", Operands: binaryOp()},

	{Opcode: spirv.OpSelect, Name: "OpSelect",
		Operands: operands(one(IDResultType), one(IDResult), one(IDRef),
			one(IDRef), one(IDRef))},
	{Opcode: spirv.OpIEqual, Name: "OpIEqual", Operands: binaryOp()},
	{Opcode: spirv.OpINotEqual, Name: "OpINotEqual", Operands: binaryOp()},
	{Opcode: spirv.OpULessThan, Name: "OpULessThan", Operands: binaryOp()},
	{Opcode: spirv.OpSLessThan, Name: "OpSLessThan", Operands: binaryOp()},

	{Opcode: spirv.OpPhi, Name: "OpPhi",
		Operands: operands(one(IDResultType), one(IDResult),
			rep(PairIDRefIDRef))},
	{Opcode: spirv.OpLoopMerge, Name: "OpLoopMerge",
		Operands: operands(one(IDRef), one(IDRef), one(LoopControl))},
	{Opcode: spirv.OpSelectionMerge, Name: "OpSelectionMerge",
		Operands: operands(one(IDRef), one(SelectionControl))},
	{Opcode: spirv.OpLabel, Name: "OpLabel",
		Operands: operands(one(IDResult))},
	{Opcode: spirv.OpBranch, Name: "OpBranch",
		Operands: operands(one(IDRef))},
	{Opcode: spirv.OpBranchConditional, Name: "OpBranchConditional",
		Operands: operands(one(IDRef), one(IDRef), one(IDRef),
			rep(LiteralInteger))},
	{Opcode: spirv.OpSwitch, Name: "OpSwitch",
		Operands: operands(one(IDRef), one(IDRef),
			rep(PairLiteralIntegerIDRef))},
	{Opcode: spirv.OpKill, Name: "OpKill"},
	{Opcode: spirv.OpReturn, Name: "OpReturn"},
	{Opcode: spirv.OpReturnValue, Name: "OpReturnValue",
		Operands: operands(one(IDRef))},
	{Opcode: spirv.OpUnreachable, Name: "OpUnreachable"},
}

// binaryOp is the common shape of two-operand arithmetic and relational
// instructions.
func binaryOp() []LogicalOperand {
	return operands(one(IDResultType), one(IDResult), one(IDRef), one(IDRef))
}
