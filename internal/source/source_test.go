package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>小猫的故事</title></head>
<body>
<article>
<h1>小猫的故事</h1>
<p>我家有一只小猫。它每天早上都在窗户旁边晒太阳，然后跑到厨房里找吃的东西。我的妈妈很喜欢它，常常给它买新鲜的鱼。</p>
<p>下午的时候，小猫喜欢在花园里玩。它追着蝴蝶跑来跑去，一点儿也不觉得累。晚上它会安静地睡在沙发上，等我们回家。</p>
<p>有一天，小猫不见了。我们找了很久，最后发现它躲在衣柜里面睡觉。大家都笑了，妈妈说它真是一只聪明的小猫。</p>
</article>
</body>
</html>`

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("request without User-Agent")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 0, zap.NewNop())

	article, err := f.FetchURL(context.Background(), srv.URL+"/cat")
	if err != nil {
		t.Fatalf("FetchURL: %v", err)
	}
	if !strings.Contains(article.Text, "小猫") {
		t.Errorf("article text %q does not contain 小猫", article.Text)
	}
}

func TestFetchURLErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		maxBody int64
		wantErr error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "body too large",
			handler: func(w http.ResponseWriter, r *http.Request) {
				// Chunked response so the limit is enforced while reading.
				w.(http.Flusher).Flush()
				fmt.Fprint(w, strings.Repeat("a", 64))
			},
			maxBody: 16,
			wantErr: ErrBodyTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewFetcher(time.Second, tt.maxBody, zap.NewNop())
			if _, err := f.FetchURL(context.Background(), srv.URL); !errors.Is(err, tt.wantErr) {
				t.Fatalf("FetchURL error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.txt")
	if err := os.WriteFile(path, []byte("我的猫很可爱"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := ReadFile(path, nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "我的猫很可爱" {
		t.Errorf("ReadFile = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("ReadFile on missing file returned nil error")
	}

	got, err = ReadFile("-", strings.NewReader("猫 - māo - cat"))
	if err != nil || got != "猫 - māo - cat" {
		t.Errorf("ReadFile(stdin) = %q, %v", got, err)
	}
}

func TestSanitizeRuby(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rt", "<ruby>漢<rt>かん</rt>字<rt>じ</rt></ruby>", "<ruby>漢字</ruby>"},
		{"rp", "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>", "<ruby>漢字</ruby>"},
		{"plain", "<p>没有注音</p>", "<p>没有注音</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(SanitizeRuby([]byte(tt.in))); got != tt.want {
				t.Errorf("SanitizeRuby(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
