package entities

import "testing"

func TestPrompt_Validate(t *testing.T) {
	valid := Prompt{
		UserID:      "user-1",
		PromptText:  "A cat in space",
		BeforeImage: "/uploads/before.png",
		AfterImage:  "/uploads/after.png",
	}

	t.Run("aceita prompt completo", func(t *testing.T) {
		p := valid
		if err := p.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("rejeita texto vazio", func(t *testing.T) {
		p := valid
		p.PromptText = "   "
		if err := p.Validate(); err == nil {
			t.Error("esperava erro para texto vazio")
		}
	})

	t.Run("rejeita imagens ausentes", func(t *testing.T) {
		p := valid
		p.AfterImage = ""
		if err := p.Validate(); err == nil {
			t.Error("esperava erro sem a imagem de depois")
		}
	})

	t.Run("rejeita prompt sem dono", func(t *testing.T) {
		p := valid
		p.UserID = ""
		if err := p.Validate(); err == nil {
			t.Error("esperava erro sem dono")
		}
	})
}

func TestPrompt_IsOwnedBy(t *testing.T) {
	p := Prompt{UserID: "user-1"}

	if !p.IsOwnedBy("user-1") {
		t.Error("esperava true para o dono")
	}
	if p.IsOwnedBy("user-2") {
		t.Error("esperava false para outro usuário")
	}
	if p.IsOwnedBy("") {
		t.Error("esperava false para chamador anônimo")
	}
}

func TestUser_Fallbacks(t *testing.T) {
	t.Run("nome vazio usa o placeholder", func(t *testing.T) {
		u := User{Name: "  "}
		if got := u.DisplayName(); got != DefaultDisplayName {
			t.Errorf("esperava %q, obteve %q", DefaultDisplayName, got)
		}
	})

	t.Run("avatar ausente usa o placeholder", func(t *testing.T) {
		u := User{}
		if got := u.AvatarOrDefault(); got != DefaultAvatarURL {
			t.Errorf("esperava %q, obteve %q", DefaultAvatarURL, got)
		}

		url := "https://example.com/me.png"
		u.AvatarURL = &url
		if got := u.AvatarOrDefault(); got != url {
			t.Errorf("esperava %q, obteve %q", url, got)
		}
	})

	t.Run("conta externa não tem credenciais locais", func(t *testing.T) {
		u := User{}
		if u.HasLocalCredentials() {
			t.Error("esperava false sem hash de senha")
		}

		hash := "$2a$10$abc"
		u.PasswordHash = &hash
		if !u.HasLocalCredentials() {
			t.Error("esperava true com hash de senha")
		}
	})
}
