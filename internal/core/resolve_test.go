package core

import (
	"testing"

	. "github.com/onsi/gomega"
)

func copyCmd() *Command {
	return &Command{
		Help: "copy files",
		Args: []Param{
			{Name: "src", Arg: Arg{Type: TypeString}},
			{Name: "dst", Arg: Arg{Type: TypeString}},
			{Name: "verbose", Arg: Arg{Type: TypeBool, FlagChars: "v"}},
		},
		DefaultParams: [][]string{{"src"}, {"src", "dst"}},
	}
}

func TestResolveNamedArgs(t *testing.T) {
	t.Parallel()

	t.Run("CollectsNamedValues", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(copyCmd(), []string{"--src=a", "--dst=b"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.resolved).To(HaveKey("src"))
		g.Expect(res.resolved).To(HaveKey("dst"))
		g.Expect(res.resolved["src"].value).To(Equal("a"))
	})

	t.Run("DuplicateNameFailsAtSecondOccurrence", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, perr := resolve(copyCmd(), []string{"--name=a", "--name=b"})
		g.Expect(perr).NotTo(BeNil())
		g.Expect(perr.Kind).To(Equal(DuplicateNamedArg))
		g.Expect(perr.Position).To(Equal(1))
		g.Expect(perr.Name).To(Equal("name"))
	})

	t.Run("SecondFlagClusterIsADuplicate", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, perr := resolve(copyCmd(), []string{"-v", "-x"})
		g.Expect(perr).NotTo(BeNil())
		g.Expect(perr.Kind).To(Equal(DuplicateNamedArg))
		g.Expect(perr.Name).To(Equal("flags"))
	})
}

func TestResolvePositionals(t *testing.T) {
	t.Parallel()

	t.Run("BuffersPositionalsInOrder", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(copyCmd(), []string{"a.txt", "b.txt"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.defaults).To(HaveLen(2))
		g.Expect(res.defaults[0].value).To(Equal("a.txt"))
		g.Expect(res.defaults[1].value).To(Equal("b.txt"))
	})

	t.Run("PositionalAfterNamedFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, perr := resolve(copyCmd(), []string{"--verbose", "input.txt"})
		g.Expect(perr).NotTo(BeNil())
		g.Expect(perr.Kind).To(Equal(NamelessAfterNamedArg))
		g.Expect(perr.Position).To(Equal(1))
	})

	t.Run("PositionalAfterFlagClusterFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, perr := resolve(copyCmd(), []string{"-v", "input.txt"})
		g.Expect(perr).NotTo(BeNil())
		g.Expect(perr.Kind).To(Equal(NamelessAfterNamedArg))
	})
}

func TestResolveSubcommands(t *testing.T) {
	t.Parallel()

	root := func() *Command {
		return &Command{
			Subcommands: map[string]*Command{
				"init": {
					Args: []Param{
						{Name: "force", Arg: Arg{Type: TypeBool}},
					},
				},
			},
		}
	}

	t.Run("SelectorSwitchesActiveCommand", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(root(), []string{"init", "--force"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.cmd.Args).To(HaveLen(1))
		g.Expect(res.resolved).To(HaveKey("force"))
		g.Expect(res.defaults).To(BeEmpty())
	})

	t.Run("UnknownSelectorFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, perr := resolve(root(), []string{"nosuch"})
		g.Expect(perr).NotTo(BeNil())
		g.Expect(perr.Kind).To(Equal(UnknownCommand))
		g.Expect(perr.Name).To(Equal("nosuch"))
		g.Expect(perr.Position).To(Equal(0))
	})

	t.Run("NestedSelectorsWalkTheTree", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inner := &Command{Args: []Param{{Name: "x", Arg: Arg{Type: TypeString}}}}
		outer := &Command{Subcommands: map[string]*Command{
			"remote": {Subcommands: map[string]*Command{"add": inner}},
		}}

		res, perr := resolve(outer, []string{"remote", "add", "--x=1"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.cmd).To(BeIdenticalTo(inner))
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("OnePositionalSelectsTheUnaryGroup", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(copyCmd(), []string{"a.txt"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.applyDefaults()).To(BeNil())
		g.Expect(res.resolved).To(HaveKey("src"))
		g.Expect(res.resolved).NotTo(HaveKey("dst"))
		g.Expect(res.resolved["src"].value).To(Equal("a.txt"))
	})

	t.Run("TwoPositionalsSelectTheBinaryGroupInOrder", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(copyCmd(), []string{"a.txt", "b.txt"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.applyDefaults()).To(BeNil())
		g.Expect(res.resolved["src"].value).To(Equal("a.txt"))
		g.Expect(res.resolved["dst"].value).To(Equal("b.txt"))
	})

	t.Run("ThreePositionalsMatchNoGroupAndStayUnassigned", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		res, perr := resolve(copyCmd(), []string{"a", "b", "c"})
		g.Expect(perr).To(BeNil())
		g.Expect(res.applyDefaults()).To(BeNil())
		g.Expect(res.resolved).NotTo(HaveKey("src"))
		g.Expect(res.resolved).NotTo(HaveKey("dst"))
	})

	t.Run("PositionalDuplicatingANamedArgFails", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		// src arrives both as a positional and as --src.
		res, perr := resolve(copyCmd(), []string{"a.txt", "--src=b"})
		g.Expect(perr).To(BeNil())

		derr := res.applyDefaults()
		g.Expect(derr).NotTo(BeNil())
		g.Expect(derr.Kind).To(Equal(DuplicateDefaultArg))
		g.Expect(derr.Name).To(Equal("src"))
		g.Expect(derr.Position).To(Equal(0))
	})
}

func TestResolveWarnings(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	res, perr := resolve(copyCmd(), []string{"-vv"})
	g.Expect(perr).To(BeNil())
	g.Expect(res.warnings).To(HaveLen(1))
	g.Expect(res.warnings[0].Kind).To(Equal(DuplicateFlag))
}
