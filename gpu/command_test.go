package gpu

import "testing"

func TestCommandTypes(t *testing.T) {
	tests := []struct {
		name    string
		command RenderCommand
		want    CommandType
	}{
		{"clear", ClearMaskFramebufferCommand{}, CmdClearMaskFramebuffer},
		{"fill", FillCommand{}, CmdFill},
		{"solid", SolidTileCommand{}, CmdSolidTile},
		{"alpha", AlphaTileCommand{}, CmdAlphaTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.command.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandTypeString(t *testing.T) {
	if got := CmdAlphaTile.String(); got != "AlphaTile" {
		t.Errorf("String() = %q, want %q", got, "AlphaTile")
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want %q", got, "Unknown")
	}
}

func TestListenerFunc(t *testing.T) {
	var received []RenderCommand
	listener := ListenerFunc(func(cmd RenderCommand) {
		received = append(received, cmd)
	})

	listener.Send(ClearMaskFramebufferCommand{})
	if len(received) != 1 || received[0].Type() != CmdClearMaskFramebuffer {
		t.Errorf("listener received %+v", received)
	}
}
