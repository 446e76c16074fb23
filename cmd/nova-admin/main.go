// nova-admin — терминальный клиент админской таблицы пользователей.
//
// Навигация постраничная поверх forward-only курсоров сервера: историю
// токенов для кнопки «назад» держит клиент (pkg/cursorstack). Пока один
// запрос в полёте, новый не начинается.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/novacast/nova-backend/pkg/cursorstack"
)

type adminUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Tier         string `json:"tier"`
	Credits      int64  `json:"credits"`
	ContentCount int64  `json:"content_count"`
	TotalViews   int64  `json:"total_views"`
	Subscription string `json:"subscription"`
}

type usersPage struct {
	Items         []adminUser `json:"items"`
	NextPageToken string      `json:"next_page_token"`
	HasMore       bool        `json:"has_more"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

type client struct {
	base     string
	token    string
	pageSize int32
	http     *http.Client
}

func (c *client) listUsers(ctx context.Context, filter, pageToken string) (*usersPage, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", filter)
	}
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	if c.pageSize > 0 {
		q.Set("page_size", strconv.Itoa(int(c.pageSize)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/admin/users?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var env apiErrorEnvelope
		if jerr := json.Unmarshal(body, &env); jerr == nil && env.Error.Code != "" {
			return nil, fmt.Errorf("server: %s (%s, request_id=%s)", env.Error.Message, env.Error.Code, env.Error.RequestID)
		}
		return nil, fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	var page usersPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}

func printPage(pageNo int, filter string, page *usersPage) {
	fmt.Printf("\n— страница %d", pageNo)
	if filter != "" {
		fmt.Printf(" (фильтр: %q)", filter)
	}
	fmt.Println(" —")

	if len(page.Items) == 0 {
		fmt.Println("  пусто")
	}

	for _, u := range page.Items {
		fmt.Printf("  %-24s %-28s %-8s creds=%-6d items=%-4d views=%-7d sub=%s\n",
			u.Username, u.Email, u.Tier, u.Credits, u.ContentCount, u.TotalViews, u.Subscription)
	}

	if page.HasMore {
		fmt.Println("  ... есть ещё страницы (n — вперёд)")
	} else {
		fmt.Println("  конец выдачи")
	}
}

func main() {
	var (
		base     string
		token    string
		pageSize int
	)
	flag.StringVar(&base, "addr", "http://localhost:50080", "base URL of nova-backend")
	flag.StringVar(&token, "token", "", "admin bearer token")
	flag.IntVar(&pageSize, "page-size", 10, "users per page")
	flag.Parse()

	if token == "" {
		fmt.Fprintln(os.Stderr, "error: -token is required")
		os.Exit(2)
	}

	cl := &client{
		base:     strings.TrimRight(base, "/"),
		token:    token,
		pageSize: int32(pageSize),
		http:     &http.Client{Timeout: 15 * time.Second},
	}

	history := cursorstack.New()
	filter := ""

	// Результат последнего запроса: next-токен для перехода вперёд.
	var lastNext string
	var lastHasMore bool

	fetch := func(token string) bool {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		page, err := cl.listUsers(ctx, filter, token)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return false
		}

		lastNext = page.NextPageToken
		lastHasMore = page.HasMore
		printPage(history.Page(), filter, page)
		return true
	}

	if !fetch(history.Current()) {
		os.Exit(1)
	}

	fmt.Println("\nкоманды: n — вперёд, p — назад, f <строка> — фильтр, r — перечитать, q — выход")

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "q":
			return

		case line == "n":
			if !lastHasMore || lastNext == "" {
				fmt.Println("дальше страниц нет")
				continue
			}
			if history.Push(lastNext) {
				if !fetch(history.Current()) {
					// Неудачный переход не должен ломать историю.
					_, _ = history.Back()
				}
			}

		case line == "p":
			token, ok := history.Back()
			if !ok {
				fmt.Println("это первая страница")
				continue
			}
			fetch(token)

		case line == "r":
			fetch(history.Current())

		case strings.HasPrefix(line, "f ") || line == "f":
			filter = strings.TrimSpace(strings.TrimPrefix(line, "f"))
			// Смена фильтра обнуляет историю: старые курсоры чужие.
			history.Reset()
			fetch(history.Current())

		default:
			fmt.Println("неизвестная команда")
		}
	}
}
