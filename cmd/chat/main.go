package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"newschat/pkg/news"
	"newschat/pkg/snippet"
)

const maxResults = 10

var quitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"종료": true,
	"끝":  true,
}

func main() {
	godotenv.Load()

	fmt.Println("=== 뉴스 요약 챗봇 ===")
	fmt.Printf("키워드를 입력하면 구글 뉴스에서 관련 기사를 %d개 찾아 요약해 드립니다.\n", maxResults)
	fmt.Println("종료하려면 'quit' 또는 'exit' 을(를) 입력하세요.")
	fmt.Println()

	client := news.NewGoogleNewsClient()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("검색할 키워드: ")
		if !scanner.Scan() {
			break
		}

		keyword := strings.TrimSpace(scanner.Text())
		if keyword == "" {
			continue
		}
		if quitWords[strings.ToLower(keyword)] {
			fmt.Println("챗봇을 종료합니다. 이용해 주셔서 감사합니다.")
			break
		}

		fmt.Printf("\n'%s' 관련 뉴스를 검색 중입니다...\n\n", keyword)

		articles, err := client.Search(context.Background(), keyword, maxResults)
		if err != nil {
			fmt.Printf("오류: %v\n", err)
		} else {
			printArticles(articles)
		}
		fmt.Println()
	}
}

func printArticles(articles []news.Article) {
	if len(articles) == 0 {
		fmt.Println("관련 뉴스를 찾지 못했습니다.")
		return
	}

	rule := strings.Repeat("=", 80)
	for i, a := range articles {
		fmt.Println(rule)
		fmt.Printf("[%d] %s\n", i+1, a.Title)
		if a.Published != "" {
			fmt.Printf(" - 날짜: %s\n", a.Published)
		}

		fmt.Println()
		fmt.Println(snippet.ShortSummary(a.Summary, 2))
		if a.Link != "" {
			fmt.Println()
			fmt.Printf("링크: %s\n", a.Link)
		}
	}
	fmt.Println(rule)
}
