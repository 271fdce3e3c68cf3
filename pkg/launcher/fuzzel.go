package launcher

type Fuzzel struct {
	args []string
}

func NewFuzzel(args []string) *Fuzzel {
	return &Fuzzel{args: args}
}

func (f *Fuzzel) Name() string {
	return "fuzzel"
}

func (f *Fuzzel) Description() string {
	return "Use fuzzel launcher"
}

func (f *Fuzzel) IsAvailable() bool {
	return commandExists("fuzzel")
}

func (f *Fuzzel) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--dmenu", "--prompt", prompt+"> ")
	return pipe("fuzzel", args, options)
}
