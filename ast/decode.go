/*
 * Flint - The capability-oriented smart contract programming language
 *
 * Copyright Flint Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"

	"github.com/flint-lang/flint/errors"
)

// DecodeProgram decodes a program from the structured tree format
// produced by the parser. The format is YAML, so JSON input is accepted as well.
//
//	declarations:
//	  - kind: contract
//	    name: Counter
//	    members:
//	      - kind: var
//	        name: count
//	        type: Int
//	        value: { kind: int, literal: "0" }
func DecodeProgram(data []byte) (*Program, error) {
	var file struct {
		Declarations []*node `yaml:"declarations"`
	}

	err := yaml.UnmarshalWithOptions(data, &file, yaml.Strict())
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to decode program: %w", err)
	}

	declarations := make([]Declaration, 0, len(file.Declarations))
	for _, declarationNode := range file.Declarations {
		declaration, err := decodeDeclaration(declarationNode)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, declaration)
	}

	return NewProgram(declarations), nil
}

type node struct {
	Kind         string       `yaml:"kind"`
	Name         string       `yaml:"name"`
	Label        string       `yaml:"label"`
	Line         int          `yaml:"line"`
	Column       int          `yaml:"column"`
	Public       bool         `yaml:"public"`
	Mutating     bool         `yaml:"mutating"`
	Implicit     bool         `yaml:"implicit"`
	Type         string       `yaml:"type"`
	Result       string       `yaml:"result"`
	TraitKind    string       `yaml:"traitKind"`
	Contract     string       `yaml:"contract"`
	Caller       string       `yaml:"caller"`
	States       []string     `yaml:"states"`
	Protections  []string     `yaml:"protections"`
	Conformances []string     `yaml:"conformances"`
	Operator     string       `yaml:"operator"`
	Mode         string       `yaml:"mode"`
	Literal      string       `yaml:"literal"`
	Parameters   []*node      `yaml:"parameters"`
	Members      []*node      `yaml:"members"`
	Body         []*node      `yaml:"body"`
	Then         []*node      `yaml:"then"`
	Else         []*node      `yaml:"else"`
	Catch        []*node      `yaml:"catch"`
	Arguments    []*node      `yaml:"arguments"`
	Elements     []*node      `yaml:"elements"`
	Entries      []*entryNode `yaml:"entries"`
	Test         *node        `yaml:"test"`
	Value        *node        `yaml:"value"`
	Target       *node        `yaml:"target"`
	Receiver     *node        `yaml:"receiver"`
	Index        *node        `yaml:"index"`
	Left         *node        `yaml:"left"`
	Right        *node        `yaml:"right"`
}

type entryNode struct {
	Key   *node `yaml:"key"`
	Value *node `yaml:"value"`
}

func (n *node) position() Position {
	return Position{
		Line:   n.Line,
		Column: n.Column,
	}
}

func (n *node) identifier() Identifier {
	return NewIdentifier(n.Name, n.position())
}

func (n *node) errorf(message string, args ...any) error {
	return errors.NewDefaultUserError(
		"%s: %s",
		n.position(),
		fmt.Sprintf(message, args...),
	)
}

func (n *node) requireName() error {
	if n.Name == "" {
		return n.errorf("missing name for %s", n.Kind)
	}
	return nil
}

func decodeDeclaration(n *node) (Declaration, error) {
	if n == nil {
		return nil, errors.NewDefaultUserError("missing declaration")
	}

	switch n.Kind {
	case "contract":
		return decodeContractDeclaration(n)
	case "behavior":
		return decodeContractBehaviorDeclaration(n)
	case "struct":
		return decodeStructDeclaration(n)
	case "trait":
		return decodeTraitDeclaration(n)
	case "enum":
		return decodeEnumDeclaration(n)
	case "event":
		return decodeEventDeclaration(n)
	case "func":
		return decodeFunctionDeclaration(n)
	case "init", "fallback":
		return decodeSpecialDeclaration(n)
	case "let", "var":
		return decodeVariableDeclaration(n)
	}

	return nil, n.errorf("unknown declaration kind %q", n.Kind)
}

func decodeMembers(members []*node) ([]Declaration, error) {
	declarations := make([]Declaration, 0, len(members))
	for _, member := range members {
		declaration, err := decodeDeclaration(member)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, declaration)
	}
	return declarations, nil
}

func decodeNominalTypes(n *node, names []string) []*NominalType {
	types := make([]*NominalType, len(names))
	for i, name := range names {
		types[i] = NewNominalType(NewIdentifier(name, n.position()))
	}
	return types
}

func decodeTypeStates(n *node, names []string) []*TypeState {
	states := make([]*TypeState, len(names))
	for i, name := range names {
		states[i] = &TypeState{
			Identifier: NewIdentifier(name, n.position()),
		}
	}
	return states
}

func decodeContractDeclaration(n *node) (*ContractDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	members, err := decodeMembers(n.Members)
	if err != nil {
		return nil, err
	}

	return &ContractDeclaration{
		Identifier:   n.identifier(),
		TypeStates:   decodeTypeStates(n, n.States),
		Conformances: decodeNominalTypes(n, n.Conformances),
		Members:      members,
		Range:        NewRange(n.position(), n.position()),
	}, nil
}

func decodeContractBehaviorDeclaration(n *node) (*ContractBehaviorDeclaration, error) {
	if n.Contract == "" {
		return nil, n.errorf("missing contract for behavior")
	}

	members, err := decodeMembers(n.Members)
	if err != nil {
		return nil, err
	}

	var callerBinding *Identifier
	if n.Caller != "" {
		identifier := NewIdentifier(n.Caller, n.position())
		callerBinding = &identifier
	}

	protections := make([]*CallerProtection, len(n.Protections))
	for i, name := range n.Protections {
		protections[i] = &CallerProtection{
			Identifier: NewIdentifier(name, n.position()),
		}
	}

	return &ContractBehaviorDeclaration{
		ContractIdentifier: NewIdentifier(n.Contract, n.position()),
		States:             decodeTypeStates(n, n.States),
		CallerBinding:      callerBinding,
		CallerProtections:  protections,
		Members:            members,
		Range:              NewRange(n.position(), n.position()),
	}, nil
}

func decodeStructDeclaration(n *node) (*StructDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	members, err := decodeMembers(n.Members)
	if err != nil {
		return nil, err
	}

	return &StructDeclaration{
		Identifier:   n.identifier(),
		Conformances: decodeNominalTypes(n, n.Conformances),
		Members:      members,
		Range:        NewRange(n.position(), n.position()),
	}, nil
}

func decodeTraitDeclaration(n *node) (*TraitDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	var kind TraitKind
	switch n.TraitKind {
	case "", "struct":
		kind = TraitKindStruct
	case "contract":
		kind = TraitKindContract
	case "external":
		kind = TraitKindExternal
	default:
		return nil, n.errorf("unknown trait kind %q", n.TraitKind)
	}

	members, err := decodeMembers(n.Members)
	if err != nil {
		return nil, err
	}

	return &TraitDeclaration{
		Kind:       kind,
		Identifier: n.identifier(),
		Members:    members,
		Range:      NewRange(n.position(), n.position()),
	}, nil
}

func decodeEnumDeclaration(n *node) (*EnumDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	var rawType Type
	if n.Type != "" {
		var err error
		rawType, err = decodeType(n, n.Type)
		if err != nil {
			return nil, err
		}
	}

	cases := make([]*EnumCaseDeclaration, 0, len(n.Members))
	for _, member := range n.Members {
		if member.Kind != "case" {
			return nil, member.errorf("unexpected %s in enum", member.Kind)
		}
		if err := member.requireName(); err != nil {
			return nil, err
		}

		var rawValue Expression
		if member.Value != nil {
			var err error
			rawValue, err = decodeExpression(member.Value)
			if err != nil {
				return nil, err
			}
		}

		cases = append(cases, &EnumCaseDeclaration{
			Identifier: member.identifier(),
			RawValue:   rawValue,
		})
	}

	return &EnumDeclaration{
		Identifier: n.identifier(),
		RawType:    rawType,
		Cases:      cases,
		Range:      NewRange(n.position(), n.position()),
	}, nil
}

func decodeEventDeclaration(n *node) (*EventDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	parameters, err := decodeParameters(n.Parameters)
	if err != nil {
		return nil, err
	}

	return &EventDeclaration{
		Identifier: n.identifier(),
		Parameters: parameters,
		Range:      NewRange(n.position(), n.position()),
	}, nil
}

func decodeParameters(nodes []*node) ([]*Parameter, error) {
	parameters := make([]*Parameter, 0, len(nodes))
	for _, n := range nodes {
		if err := n.requireName(); err != nil {
			return nil, err
		}
		parameterType, err := decodeType(n, n.Type)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, &Parameter{
			Identifier: n.identifier(),
			Type:       parameterType,
			IsImplicit: n.Implicit,
			StartPos:   n.position(),
		})
	}
	return parameters, nil
}

func decodeFunctionDeclaration(n *node) (*FunctionDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	parameters, err := decodeParameters(n.Parameters)
	if err != nil {
		return nil, err
	}

	var returnType Type
	if n.Result != "" {
		returnType, err = decodeType(n, n.Result)
		if err != nil {
			return nil, err
		}
	}

	// functions without body are trait signatures
	var body *Block
	if n.Body != nil {
		body, err = decodeBlock(n, n.Body)
		if err != nil {
			return nil, err
		}
	}

	return &FunctionDeclaration{
		IsPublic:   n.Public,
		IsMutating: n.Mutating,
		Identifier: n.identifier(),
		Parameters: parameters,
		ReturnType: returnType,
		Body:       body,
		StartPos:   n.position(),
	}, nil
}

func decodeSpecialDeclaration(n *node) (*SpecialDeclaration, error) {
	kind := SpecialKindInitializer
	if n.Kind == "fallback" {
		kind = SpecialKindFallback
	}

	parameters, err := decodeParameters(n.Parameters)
	if err != nil {
		return nil, err
	}

	body, err := decodeBlock(n, n.Body)
	if err != nil {
		return nil, err
	}

	return &SpecialDeclaration{
		Kind:       kind,
		IsPublic:   n.Public,
		Parameters: parameters,
		Body:       body,
		StartPos:   n.position(),
	}, nil
}

func decodeVariableDeclaration(n *node) (*VariableDeclaration, error) {
	if err := n.requireName(); err != nil {
		return nil, err
	}

	declaration := &VariableDeclaration{
		IsConstant: n.Kind == "let",
		Identifier: n.identifier(),
		StartPos:   n.position(),
	}

	if n.Type != "" {
		typeAnnotation, err := decodeType(n, n.Type)
		if err != nil {
			return nil, err
		}
		declaration.TypeAnnotation = typeAnnotation
	}

	if n.Value != nil {
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		declaration.Value = value
	}

	return declaration, nil
}

// decodeType parses the type syntax: `T`, `[T]`, `[K: V]` and `inout T`
func decodeType(n *node, text string) (Type, error) {
	text = strings.TrimSpace(text)
	pos := n.position()

	if text == "" {
		return nil, n.errorf("missing type")
	}

	if rest, ok := strings.CutPrefix(text, "inout "); ok {
		innerType, err := decodeType(n, rest)
		if err != nil {
			return nil, err
		}
		return &InoutType{
			Type:     innerType,
			StartPos: pos,
		}, nil
	}

	if strings.HasPrefix(text, "[") {
		if !strings.HasSuffix(text, "]") {
			return nil, n.errorf("invalid type %q", text)
		}
		inner := text[1 : len(text)-1]

		depth := 0
		for i, r := range inner {
			switch r {
			case '[':
				depth++
			case ']':
				depth--
			case ':':
				if depth != 0 {
					continue
				}
				keyType, err := decodeType(n, inner[:i])
				if err != nil {
					return nil, err
				}
				valueType, err := decodeType(n, inner[i+1:])
				if err != nil {
					return nil, err
				}
				return &DictionaryType{
					KeyType:   keyType,
					ValueType: valueType,
					Range:     NewRange(pos, pos),
				}, nil
			}
		}

		elementType, err := decodeType(n, inner)
		if err != nil {
			return nil, err
		}
		return &ArrayType{
			Type:  elementType,
			Range: NewRange(pos, pos),
		}, nil
	}

	if strings.ContainsAny(text, "[]: ") {
		return nil, n.errorf("invalid type %q", text)
	}

	return NewNominalType(NewIdentifier(text, pos)), nil
}

func decodeBlock(n *node, statementNodes []*node) (*Block, error) {
	statements := make([]Statement, 0, len(statementNodes))
	for _, statementNode := range statementNodes {
		statement, err := decodeStatement(statementNode)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return NewBlock(statements, NewRange(n.position(), n.position())), nil
}

func decodeStatement(n *node) (Statement, error) {
	if n == nil {
		return nil, errors.NewDefaultUserError("missing statement")
	}

	switch n.Kind {
	case "let", "var":
		return decodeVariableDeclaration(n)

	case "expression":
		expression, err := decodeRequiredExpression(n, n.Value)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{
			Expression: expression,
		}, nil

	case "return":
		statement := &ReturnStatement{
			Range: NewRange(n.position(), n.position()),
		}
		if n.Value != nil {
			expression, err := decodeExpression(n.Value)
			if err != nil {
				return nil, err
			}
			statement.Expression = expression
		}
		return statement, nil

	case "become":
		if err := n.requireName(); err != nil {
			return nil, err
		}
		return &BecomeStatement{
			State:    n.identifier(),
			StartPos: n.position(),
		}, nil

	case "emit":
		invocation, err := decodeInvocation(n.Value)
		if err != nil {
			return nil, err
		}
		return &EmitStatement{
			InvocationExpression: invocation,
			StartPos:             n.position(),
		}, nil

	case "assign":
		return decodeAssignmentStatement(n)

	case "if":
		return decodeIfStatement(n)

	case "for":
		if err := n.requireName(); err != nil {
			return nil, err
		}
		value, err := decodeRequiredExpression(n, n.Value)
		if err != nil {
			return nil, err
		}
		block, err := decodeBlock(n, n.Body)
		if err != nil {
			return nil, err
		}
		return &ForStatement{
			Identifier: n.identifier(),
			Value:      value,
			Block:      block,
			StartPos:   n.position(),
		}, nil

	case "do":
		doBlock, err := decodeBlock(n, n.Body)
		if err != nil {
			return nil, err
		}
		catchBlock, err := decodeBlock(n, n.Catch)
		if err != nil {
			return nil, err
		}
		return &DoCatchStatement{
			DoBlock:    doBlock,
			CatchBlock: catchBlock,
			StartPos:   n.position(),
		}, nil

	case "release":
		if err := n.requireName(); err != nil {
			return nil, err
		}
		return &ReleaseStatement{
			Identifier: n.identifier(),
		}, nil
	}

	return nil, n.errorf("unknown statement kind %q", n.Kind)
}

func decodeAssignmentStatement(n *node) (*AssignmentStatement, error) {
	target, err := decodeRequiredExpression(n, n.Target)
	if err != nil {
		return nil, err
	}
	value, err := decodeRequiredExpression(n, n.Value)
	if err != nil {
		return nil, err
	}

	operation := OperationUnknown
	if n.Operator != "" && n.Operator != "=" {
		symbol, ok := strings.CutSuffix(n.Operator, "=")
		if ok {
			operation = ParseOperation(symbol)
		}
		if !operation.IsArithmetic() {
			return nil, n.errorf("invalid assignment operator %q", n.Operator)
		}
	}

	return &AssignmentStatement{
		Target:    target,
		Operation: operation,
		Value:     value,
	}, nil
}

func decodeIfStatement(n *node) (*IfStatement, error) {
	if n.Test == nil {
		return nil, n.errorf("missing test for if statement")
	}

	var test IfStatementTest
	var err error
	switch n.Test.Kind {
	case "let", "var":
		test, err = decodeVariableDeclaration(n.Test)
	default:
		test, err = decodeExpression(n.Test)
	}
	if err != nil {
		return nil, err
	}

	thenBlock, err := decodeBlock(n, n.Then)
	if err != nil {
		return nil, err
	}

	var elseBlock *Block
	if n.Else != nil {
		elseBlock, err = decodeBlock(n, n.Else)
		if err != nil {
			return nil, err
		}
	}

	return &IfStatement{
		Test:     test,
		Then:     thenBlock,
		Else:     elseBlock,
		StartPos: n.position(),
	}, nil
}

func decodeRequiredExpression(parent *node, n *node) (Expression, error) {
	if n == nil {
		return nil, parent.errorf("missing expression for %s", parent.Kind)
	}
	return decodeExpression(n)
}

func decodeExpressions(nodes []*node) ([]Expression, error) {
	expressions := make([]Expression, 0, len(nodes))
	for _, n := range nodes {
		expression, err := decodeExpression(n)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expression)
	}
	return expressions, nil
}

func decodeInvocation(n *node) (*InvocationExpression, error) {
	if n == nil || n.Kind != "call" {
		return nil, errors.NewDefaultUserError("expected call")
	}
	if err := n.requireName(); err != nil {
		return nil, err
	}

	var receiver Expression
	if n.Receiver != nil {
		var err error
		receiver, err = decodeExpression(n.Receiver)
		if err != nil {
			return nil, err
		}
	}

	arguments := make([]*Argument, 0, len(n.Arguments))
	for _, argumentNode := range n.Arguments {
		value, err := decodeRequiredExpression(argumentNode, argumentNode.Value)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, &Argument{
			Label:      argumentNode.Label,
			Expression: value,
		})
	}

	return &InvocationExpression{
		Receiver:   receiver,
		Identifier: n.identifier(),
		Arguments:  arguments,
		EndPos:     n.position(),
	}, nil
}

func decodeExpression(n *node) (Expression, error) {
	if n == nil {
		return nil, errors.NewDefaultUserError("missing expression")
	}

	pos := n.position()
	literalRange := NewRange(pos, pos.Shifted(len(n.Literal)))

	switch n.Kind {
	case "bool":
		switch n.Literal {
		case "true":
			return &BoolExpression{Value: true, Range: literalRange}, nil
		case "false":
			return &BoolExpression{Value: false, Range: literalRange}, nil
		}
		return nil, n.errorf("invalid boolean literal %q", n.Literal)

	case "int":
		value, ok := new(big.Int).SetString(n.Literal, 10)
		if !ok {
			return nil, n.errorf("invalid integer literal %q", n.Literal)
		}
		return &IntegerExpression{Value: value, Range: literalRange}, nil

	case "string":
		return &StringExpression{Value: norm.NFC.String(n.Literal), Range: literalRange}, nil

	case "address":
		if !strings.HasPrefix(n.Literal, "0x") {
			return nil, n.errorf("invalid address literal %q", n.Literal)
		}
		return &AddressExpression{Value: n.Literal, Range: literalRange}, nil

	case "array":
		values, err := decodeExpressions(n.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayExpression{Values: values, Range: NewRange(pos, pos)}, nil

	case "dictionary":
		entries := make([]DictionaryEntry, 0, len(n.Entries))
		for _, entry := range n.Entries {
			key, err := decodeRequiredExpression(n, entry.Key)
			if err != nil {
				return nil, err
			}
			value, err := decodeRequiredExpression(n, entry.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, DictionaryEntry{Key: key, Value: value})
		}
		return &DictionaryExpression{Entries: entries, Range: NewRange(pos, pos)}, nil

	case "identifier":
		if err := n.requireName(); err != nil {
			return nil, err
		}
		return &IdentifierExpression{Identifier: n.identifier()}, nil

	case "member":
		if err := n.requireName(); err != nil {
			return nil, err
		}
		target, err := decodeRequiredExpression(n, n.Target)
		if err != nil {
			return nil, err
		}
		return &MemberExpression{Expression: target, Identifier: n.identifier()}, nil

	case "index":
		target, err := decodeRequiredExpression(n, n.Target)
		if err != nil {
			return nil, err
		}
		index, err := decodeRequiredExpression(n, n.Index)
		if err != nil {
			return nil, err
		}
		return &IndexExpression{
			TargetExpression:   target,
			IndexingExpression: index,
			EndPos:             pos,
		}, nil

	case "call":
		return decodeInvocation(n)

	case "external":
		var mode ExternalCallMode
		switch n.Mode {
		case "", "call":
			mode = ExternalCallModeDefault
		case "call!":
			mode = ExternalCallModeForced
		case "call?":
			mode = ExternalCallModeOptional
		default:
			return nil, n.errorf("invalid external call mode %q", n.Mode)
		}
		invocation, err := decodeInvocation(n.Value)
		if err != nil {
			return nil, err
		}
		return &ExternalCallExpression{
			Mode:       mode,
			Invocation: invocation,
			StartPos:   pos,
		}, nil

	case "ref":
		value, err := decodeRequiredExpression(n, n.Value)
		if err != nil {
			return nil, err
		}
		return &ReferenceExpression{Expression: value, StartPos: pos}, nil

	case "unary":
		value, err := decodeRequiredExpression(n, n.Value)
		if err != nil {
			return nil, err
		}
		operation := ParseOperation(n.Operator)
		if operation != OperationNegate && operation != OperationMinus {
			return nil, n.errorf("invalid unary operator %q", n.Operator)
		}
		return &UnaryExpression{Operation: operation, Expression: value, StartPos: pos}, nil

	case "binary", "range":
		left, err := decodeRequiredExpression(n, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeRequiredExpression(n, n.Right)
		if err != nil {
			return nil, err
		}

		if n.Kind == "range" {
			switch n.Operator {
			case "...":
				return &RangeExpression{Start: left, End: right, IsClosed: true}, nil
			case "..<":
				return &RangeExpression{Start: left, End: right}, nil
			}
			return nil, n.errorf("invalid range operator %q", n.Operator)
		}

		operation := ParseOperation(n.Operator)
		if operation == OperationUnknown || operation == OperationNegate {
			return nil, n.errorf("invalid binary operator %q", n.Operator)
		}
		return &BinaryExpression{Operation: operation, Left: left, Right: right}, nil
	}

	return nil, n.errorf("unknown expression kind %q", n.Kind)
}
