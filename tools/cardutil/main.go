package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fiftytwo-server/internal/domain"
)

// cardutil - конвертация card_id <-> карта для ручной проверки
// YAML-контента (карты в статьях и стеках колоды задаются числами 0..51).

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "name":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cardutil name <card_id>")
			return
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil || id < 0 || id >= domain.CardsPerSet {
			fmt.Printf("Invalid card_id (want 0..%d): %s\n", domain.CardsPerSet-1, os.Args[2])
			return
		}
		c := domain.CardFromID(id)
		fmt.Printf("%s (base value %d)\n", c, c.BaseValue())
	case "id":
		if len(os.Args) < 4 {
			fmt.Println("Usage: cardutil id <suit> <rank>")
			return
		}
		suit, err := parseSuit(os.Args[2])
		if err != nil {
			fmt.Println(err)
			return
		}
		rank, err := parseRank(os.Args[3])
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(domain.MakeCardID(suit, rank))
	case "deck":
		for id := 0; id < domain.CardsPerSet; id++ {
			fmt.Printf("%2d  %s\n", id, domain.CardFromID(id))
		}
	default:
		printHelp()
	}
}

func parseSuit(s string) (domain.CardSuit, error) {
	switch strings.ToLower(s) {
	case "hearts", "h":
		return domain.SuitHearts, nil
	case "diamonds", "d":
		return domain.SuitDiamonds, nil
	case "clubs", "c":
		return domain.SuitClubs, nil
	case "spades", "s":
		return domain.SuitSpades, nil
	}
	return 0, fmt.Errorf("Invalid suit: %s (want hearts/diamonds/clubs/spades)", s)
}

func parseRank(s string) (domain.CardRank, error) {
	switch strings.ToLower(s) {
	case "ace", "a":
		return domain.RankAce, nil
	case "jack", "j":
		return domain.RankJack, nil
	case "queen", "q":
		return domain.RankQueen, nil
	case "king", "k":
		return domain.RankKing, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("Invalid rank: %s (want 2..10, ace, jack, queen, king)", s)
	}
	return domain.CardRank(n), nil
}

func printHelp() {
	fmt.Println(`Card Utility - конвертация card_id и карт
Commands:
  name <card_id>     - название карты по card_id (0..51)
  id <suit> <rank>   - card_id по масти и достоинству
  deck               - вся колода с card_id`)
}
