package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"forumapi/internal/apperror"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Za-z0-9_-]{16}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := DefaultIDGenerator()
		if !valid.MatchString(s) {
			t.Fatalf("unexpected id suffix %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate id suffix %q", s)
		}
		seen[s] = true
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret" {
		t.Fatal("password stored in plain text")
	}
	if err := CheckPassword("secret", hash); err != nil {
		t.Errorf("expected password to match, got %v", err)
	}

	err = CheckPassword("wrong", hash)
	if apperror.KindOf(err) != apperror.KindAuthentication {
		t.Errorf("expected authentication error, got %v", err)
	}
}

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", time.Hour)

	access, err := m.CreateAccessToken("user-123")
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	id, err := m.DecodeAccessToken(access)
	if err != nil || id != "user-123" {
		t.Fatalf("DecodeAccessToken = %q, %v", id, err)
	}

	refresh, err := m.CreateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("CreateRefreshToken failed: %v", err)
	}
	if id, err := m.VerifyRefreshToken(refresh); err != nil || id != "user-123" {
		t.Fatalf("VerifyRefreshToken = %q, %v", id, err)
	}

	// 用错密钥签名的 token 不能互换使用
	if _, err := m.VerifyRefreshToken(access); apperror.KindOf(err) != apperror.KindInvariant {
		t.Errorf("expected invariant error for access token used as refresh, got %v", err)
	}
	if _, err := m.DecodeAccessToken(refresh); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}

	other, _ := m.CreateRefreshToken("user-123")
	if other == refresh {
		t.Error("refresh tokens should be unique per issue")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", -time.Minute)

	access, err := m.CreateAccessToken("user-123")
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	if _, err := m.DecodeAccessToken(access); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestCache(t *testing.T) {
	c, err := NewCache(10, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	c.Set("thread:1", "value")
	if got := c.Get("thread:1"); got != "value" {
		t.Errorf("expected cached value, got %v", got)
	}
	c.Delete("thread:1")
	if got := c.Get("thread:1"); got != nil {
		t.Errorf("expected deleted key to miss, got %v", got)
	}

	c.Set("thread:2", "value")
	time.Sleep(80 * time.Millisecond)
	if got := c.Get("thread:2"); got != nil {
		t.Errorf("expected expired key to miss, got %v", got)
	}
}

func TestCache_DisabledIsNoop(t *testing.T) {
	c, err := NewCache(0, time.Minute)
	if err != nil || c != nil {
		t.Fatalf("expected disabled cache, got %v, %v", c, err)
	}
	c.Set("k", 1)
	if c.Get("k") != nil {
		t.Error("disabled cache returned a value")
	}
	c.Delete("k")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("**tebal** ![img](https://example.com/a.png)<script>alert(1)</script>")

	if !strings.Contains(out, "<strong>tebal</strong>") {
		t.Errorf("expected bold markup, got %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag was not sanitized: %s", out)
	}
	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("expected lazy image, got %s", out)
	}
}

func TestRenderMarkdown_PlainBody(t *testing.T) {
	if out := RenderMarkdown("  \n "); out != "" {
		t.Errorf("expected empty output for blank body, got %q", out)
	}

	out := RenderMarkdown("baris satu\nbaris dua [link](javascript:alert(1))")
	if strings.Contains(out, "<body>") || strings.Contains(out, "<html>") {
		t.Errorf("plain body must not be wrapped in a document: %s", out)
	}
	if !strings.Contains(out, "<br") {
		t.Errorf("expected hard wrap, got %s", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript link was not sanitized: %s", out)
	}
}
