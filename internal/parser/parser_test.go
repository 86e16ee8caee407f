package parser

import (
	"testing"

	"zag/internal/ast"
)

func parseNoErrors(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree := Parse([]byte(src))
	for _, e := range tree.Errors {
		t.Fatalf("unexpected syntax error: %s", e.Message(tree.Tokens))
	}
	return tree
}

func rootDecls(t *testing.T, tree *ast.Tree) []ast.NodeID {
	t.Helper()
	if !tree.Root.IsValid() {
		t.Fatal("tree has no root")
	}
	return tree.RootNode(tree.Root).Decls
}

func TestParseEmpty(t *testing.T) {
	tree := parseNoErrors(t, "")
	if decls := rootDecls(t, tree); len(decls) != 0 {
		t.Fatalf("got %d decls, want 0", len(decls))
	}
}

func TestParseTopLevelDecls(t *testing.T) {
	tree := parseNoErrors(t, `
const x = 1;
pub fn add(a: i32, b: i32) i32 {
    return a + b;
}
`)
	decls := rootDecls(t, tree)
	if len(decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(decls))
	}
	if k := tree.Kind(decls[0]); k != ast.NodeVarDecl {
		t.Errorf("decls[0] kind = %s, want NodeVarDecl", k)
	}
	vd := tree.VarDeclNode(decls[0])
	if got := tree.TokenText(vd.NameToken); got != "x" {
		t.Errorf("var name = %q, want %q", got, "x")
	}
	if k := tree.Kind(decls[1]); k != ast.NodeFnProto {
		t.Fatalf("decls[1] kind = %s, want NodeFnProto", k)
	}
	fn := tree.FnProtoNode(decls[1])
	if !fn.VisibToken.Valid() {
		t.Error("fn is missing its pub token")
	}
	if got := tree.TokenText(fn.NameToken.Unwrap()); got != "add" {
		t.Errorf("fn name = %q, want %q", got, "add")
	}
	if len(fn.Params) != 2 {
		t.Errorf("got %d params, want 2", len(fn.Params))
	}
	if !fn.Body.IsValid() {
		t.Fatal("fn has no body")
	}
	body := tree.BlockNode(fn.Body)
	if len(body.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(body.Statements))
	}
}

func TestParsePrecedence(t *testing.T) {
	tree := parseNoErrors(t, "const v = 1 + 2 * 3;")
	decls := rootDecls(t, tree)
	init := tree.VarDeclNode(decls[0]).Init
	if k := tree.Kind(init); k != ast.NodeInfixOp {
		t.Fatalf("init kind = %s, want NodeInfixOp", k)
	}
	add := tree.InfixOpNode(init)
	if add.Op != ast.InfixAdd {
		t.Fatalf("root op = %d, want InfixAdd", add.Op)
	}
	if k := tree.Kind(add.Lhs); k != ast.NodeIntLit {
		t.Errorf("lhs kind = %s, want NodeIntLit", k)
	}
	mul := tree.InfixOpNode(add.Rhs)
	if mul.Op != ast.InfixMul {
		t.Errorf("rhs op = %d, want InfixMul", mul.Op)
	}
}

func TestParseCallTrailingComma(t *testing.T) {
	for _, src := range []string{
		"const a = f(1, 2);",
		"const a = f(1, 2,);",
	} {
		tree := parseNoErrors(t, src)
		init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
		call := tree.SuffixOpNode(init)
		if call.Op != ast.SuffixCall {
			t.Fatalf("%s: op = %d, want SuffixCall", src, call.Op)
		}
		if len(call.Exprs) != 2 {
			t.Errorf("%s: got %d args, want 2", src, len(call.Exprs))
		}
	}
}

func TestParseRecovery(t *testing.T) {
	tree := Parse([]byte("const x = ;\nconst y = 5;"))
	if len(tree.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(tree.Errors))
	}
	if tree.Errors[0].Kind != ast.ErrExpectedExpr {
		t.Errorf("error kind = %d, want ErrExpectedExpr", tree.Errors[0].Kind)
	}
	decls := rootDecls(t, tree)
	if len(decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(decls))
	}
	vd := tree.VarDeclNode(decls[0])
	if got := tree.TokenText(vd.NameToken); got != "y" {
		t.Errorf("surviving decl = %q, want %q", got, "y")
	}
}

func TestParseDuplicatePtrQualifiers(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.ErrorKind
	}{
		{"const p = *align(4) align(8) u8;", ast.ErrExtraAlignQualifier},
		{"const p = *const const u8;", ast.ErrExtraConstQualifier},
		{"const p = *volatile volatile u8;", ast.ErrExtraVolatileQualifier},
		{"const p = *allowzero allowzero u8;", ast.ErrExtraAllowZeroQualifier},
	}
	for _, tc := range tests {
		tree := Parse([]byte(tc.src))
		if len(tree.Errors) == 0 {
			t.Errorf("%s: parsed without errors", tc.src)
			continue
		}
		if tree.Errors[0].Kind != tc.kind {
			t.Errorf("%s: error kind = %d, want %d", tc.src, tree.Errors[0].Kind, tc.kind)
		}
	}
}

func TestParseContainerDecl(t *testing.T) {
	tree := parseNoErrors(t, `
const S = struct {
    a: i32,
    b: i32,

    pub fn zero() S {
        return S{ .a = 0, .b = 0 };
    }
};
`)
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	if k := tree.Kind(init); k != ast.NodeContainerDecl {
		t.Fatalf("init kind = %s, want NodeContainerDecl", k)
	}
	cd := tree.ContainerDeclNode(init)
	if cd.Kind != ast.ContainerStruct {
		t.Errorf("container kind = %d, want ContainerStruct", cd.Kind)
	}
	if len(cd.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(cd.Members))
	}
	wantKinds := []ast.NodeKind{ast.NodeContainerField, ast.NodeContainerField, ast.NodeFnProto}
	for i, want := range wantKinds {
		if k := tree.Kind(cd.Members[i]); k != want {
			t.Errorf("member %d kind = %s, want %s", i, k, want)
		}
	}
}

func TestParseEnumWithTag(t *testing.T) {
	tree := parseNoErrors(t, "const Color = enum(u8) { Red, Green, Blue };")
	cd := tree.ContainerDeclNode(tree.VarDeclNode(rootDecls(t, tree)[0]).Init)
	if cd.Kind != ast.ContainerEnum {
		t.Errorf("container kind = %d, want ContainerEnum", cd.Kind)
	}
	if cd.InitKind != ast.ContainerInitType {
		t.Errorf("init kind = %d, want ContainerInitType", cd.InitKind)
	}
	if !cd.InitArg.IsValid() {
		t.Error("enum tag type missing")
	}
	if len(cd.Members) != 3 {
		t.Errorf("got %d members, want 3", len(cd.Members))
	}
}

func TestParseSwitch(t *testing.T) {
	tree := parseNoErrors(t, `
const r = switch (n) {
    0, 1 => 10,
    2 ... 5 => 20,
    else => 30,
};
`)
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	if k := tree.Kind(init); k != ast.NodeSwitch {
		t.Fatalf("init kind = %s, want NodeSwitch", k)
	}
	sw := tree.SwitchNode(init)
	if len(sw.Cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(sw.Cases))
	}
	first := tree.SwitchCaseNode(sw.Cases[0])
	if len(first.Items) != 2 {
		t.Errorf("case 0: got %d items, want 2", len(first.Items))
	}
	second := tree.SwitchCaseNode(sw.Cases[1])
	if op := tree.InfixOpNode(second.Items[0]).Op; op != ast.InfixRange {
		t.Errorf("case 1: item op = %d, want InfixRange", op)
	}
	third := tree.SwitchCaseNode(sw.Cases[2])
	if k := tree.Kind(third.Items[0]); k != ast.NodeSwitchElse {
		t.Errorf("case 2: item kind = %s, want NodeSwitchElse", k)
	}
}

func TestParseStatements(t *testing.T) {
	tree := parseNoErrors(t, `
fn run(xs: []i32, n: i32) i32 {
    var total: i32 = 0;
    for (xs) |x| {
        total += x;
    }
    var i: i32 = n;
    while (i > 0) : (i -= 1) {
        if (i == 1) break;
    }
    return total;
}
`)
	fn := tree.FnProtoNode(rootDecls(t, tree)[0])
	stmts := tree.BlockNode(fn.Body).Statements
	wantKinds := []ast.NodeKind{
		ast.NodeVarDecl, ast.NodeFor, ast.NodeVarDecl, ast.NodeWhile, ast.NodeControlFlowExpr,
	}
	if len(stmts) != len(wantKinds) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(wantKinds))
	}
	for i, want := range wantKinds {
		if k := tree.Kind(stmts[i]); k != want {
			t.Errorf("statement %d kind = %s, want %s", i, k, want)
		}
	}
	loop := tree.WhileNode(stmts[3])
	if !loop.Continue.IsValid() {
		t.Error("while loop lost its continue expression")
	}
	forLoop := tree.ForNode(stmts[1])
	if !forLoop.Payload.IsValid() {
		t.Error("for loop lost its payload")
	}
}

func TestParseErrorSet(t *testing.T) {
	tree := parseNoErrors(t, "const E = error{OutOfMemory, NotFound};")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	if k := tree.Kind(init); k != ast.NodeErrorSetDecl {
		t.Fatalf("init kind = %s, want NodeErrorSetDecl", k)
	}
	es := tree.ErrorSetDeclNode(init)
	if len(es.Decls) != 2 {
		t.Errorf("got %d tags, want 2", len(es.Decls))
	}
}

func TestParseOptionalPointerType(t *testing.T) {
	tree := parseNoErrors(t, "const T = ?*u32;")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	opt := tree.PrefixOpNode(init)
	if opt.Op != ast.PrefixOptionalType {
		t.Fatalf("outer op = %d, want PrefixOptionalType", opt.Op)
	}
	ptr := tree.PrefixOpNode(opt.Rhs)
	if ptr.Op != ast.PrefixPtrType {
		t.Errorf("inner op = %d, want PrefixPtrType", ptr.Op)
	}
}

func TestParseCatchWithPayload(t *testing.T) {
	tree := parseNoErrors(t, "const v = read() catch |err| fallback;")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	op := tree.InfixOpNode(init)
	if op.Op != ast.InfixCatch {
		t.Fatalf("op = %d, want InfixCatch", op.Op)
	}
	if !op.Payload.IsValid() {
		t.Error("catch payload missing")
	}
}

func TestParseAsyncCall(t *testing.T) {
	tree := parseNoErrors(t, "const frame = async fetch(url);")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	call := tree.SuffixOpNode(init)
	if call.Op != ast.SuffixCall {
		t.Fatalf("op = %d, want SuffixCall", call.Op)
	}
	if !call.AsyncToken.Valid() {
		t.Error("async token missing")
	}
	if len(call.Exprs) != 1 {
		t.Errorf("got %d args, want 1", len(call.Exprs))
	}
}

func TestParseAsm(t *testing.T) {
	tree := parseNoErrors(t, `
const r = asm volatile ("syscall"
    : [ret] "={rax}" (-> usize)
    : [num] "{rax}" (1)
    : "rcx", "r11");
`)
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	if k := tree.Kind(init); k != ast.NodeAsm {
		t.Fatalf("init kind = %s, want NodeAsm", k)
	}
	a := tree.AsmNode(init)
	if !a.VolatileToken.Valid() {
		t.Error("volatile token missing")
	}
	if len(a.Outputs) != 1 || len(a.Inputs) != 1 || len(a.Clobbers) != 2 {
		t.Errorf("outputs/inputs/clobbers = %d/%d/%d, want 1/1/2",
			len(a.Outputs), len(a.Inputs), len(a.Clobbers))
	}
	out := tree.AsmOutputNode(a.Outputs[0])
	if !out.ReturnType.IsValid() {
		t.Error("asm output return type missing")
	}
}

func TestParseDocCommentAttaches(t *testing.T) {
	tree := parseNoErrors(t, "/// Counts things.\nconst count = 0;")
	vd := tree.VarDeclNode(rootDecls(t, tree)[0])
	if !vd.Doc.IsValid() {
		t.Fatal("doc comment did not attach")
	}
	if lines := tree.DocCommentNode(vd.Doc).Lines; len(lines) != 1 {
		t.Errorf("got %d doc lines, want 1", len(lines))
	}
}

func TestParseUnattachedDocComment(t *testing.T) {
	tree := Parse([]byte("/// nothing follows\n"))
	if len(tree.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(tree.Errors))
	}
	if tree.Errors[0].Kind != ast.ErrUnattachedDocComment {
		t.Errorf("error kind = %d, want ErrUnattachedDocComment", tree.Errors[0].Kind)
	}
}

func TestParseTestDecl(t *testing.T) {
	tree := parseNoErrors(t, `test "basic addition" {}`)
	decls := rootDecls(t, tree)
	if k := tree.Kind(decls[0]); k != ast.NodeTestDecl {
		t.Fatalf("decl kind = %s, want NodeTestDecl", k)
	}
	td := tree.TestDeclNode(decls[0])
	if !td.Name.IsValid() || !td.Body.IsValid() {
		t.Error("test decl missing name or body")
	}
}

func TestParseUsingNamespace(t *testing.T) {
	tree := parseNoErrors(t, `pub usingnamespace @import("std");`)
	decls := rootDecls(t, tree)
	if k := tree.Kind(decls[0]); k != ast.NodeUse {
		t.Fatalf("decl kind = %s, want NodeUse", k)
	}
	use := tree.UseNode(decls[0])
	if !use.VisibToken.Valid() {
		t.Error("pub token missing")
	}
	if k := tree.Kind(use.Expr); k != ast.NodeBuiltinCall {
		t.Errorf("use expr kind = %s, want NodeBuiltinCall", k)
	}
}

func TestParseMultilineString(t *testing.T) {
	tree := parseNoErrors(t, "const s =\n    \\\\hello\n    \\\\world\n;")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	if k := tree.Kind(init); k != ast.NodeMultilineStringLit {
		t.Fatalf("init kind = %s, want NodeMultilineStringLit", k)
	}
	if lines := tree.MultilineStringNode(init).Lines; len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
}

func TestParseStructInitVsArrayInit(t *testing.T) {
	tree := parseNoErrors(t, "const a = P{ .x = 1 };\nconst b = V{ 1, 2, 3 };\nconst c = P{};")
	decls := rootDecls(t, tree)
	wantOps := []ast.SuffixOp{ast.SuffixStructInit, ast.SuffixArrayInit, ast.SuffixStructInit}
	wantLens := []int{1, 3, 0}
	for i, want := range wantOps {
		node := tree.SuffixOpNode(tree.VarDeclNode(decls[i]).Init)
		if node.Op != want {
			t.Errorf("decl %d: op = %d, want %d", i, node.Op, want)
		}
		if len(node.Exprs) != wantLens[i] {
			t.Errorf("decl %d: got %d items, want %d", i, len(node.Exprs), wantLens[i])
		}
	}
}

func TestParseErrorUnionReturn(t *testing.T) {
	tree := parseNoErrors(t, "fn open(path: []const u8) OpenError!File {}")
	fn := tree.FnProtoNode(rootDecls(t, tree)[0])
	if k := tree.Kind(fn.ReturnType); k != ast.NodeInfixOp {
		t.Fatalf("return type kind = %s, want NodeInfixOp", k)
	}
	if op := tree.InfixOpNode(fn.ReturnType).Op; op != ast.InfixErrorUnion {
		t.Errorf("return type op = %d, want InfixErrorUnion", op)
	}
}

func TestParseTryBindsWholeExpr(t *testing.T) {
	tree := parseNoErrors(t, "const v = try a + b;")
	init := tree.VarDeclNode(rootDecls(t, tree)[0]).Init
	pre := tree.PrefixOpNode(init)
	if pre.Op != ast.PrefixTry {
		t.Fatalf("root op = %d, want PrefixTry", pre.Op)
	}
	if k := tree.Kind(pre.Rhs); k != ast.NodeInfixOp {
		t.Errorf("try operand kind = %s, want NodeInfixOp", k)
	}
}
