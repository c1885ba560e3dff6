package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"study-group-service/internal/auth"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	rps      = 20
	duration = time.Minute

	groupsCount   = 10
	groupCapacity = 15
	usersCount    = 300
)

type GroupCreateRequest struct {
	GroupID          string `json:"group_id"`
	Name             string `json:"name"`
	Capacity         int    `json:"capacity"`
	RequiresApproval bool   `json:"requires_approval"`
}

type MemberRef struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
}

var (
	targetHost = getEnv("TARGET_HOST", "http://localhost:8080")
	jwtService = auth.NewJWTService(getEnv("JWT_SECRET", "change-me"), time.Hour)

	groups  []string
	owners  = map[string]string{}
	users   []string
	tokens  = map[string]string{}
	counter atomic.Int64
	httpc   = &http.Client{Timeout: 10 * time.Second}
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func tokenFor(userID string) string {
	if t, ok := tokens[userID]; ok {
		return t
	}
	t, err := jwtService.Generate(userID)
	if err != nil {
		log.Fatalf("token for %s: %v", userID, err)
	}
	tokens[userID] = t
	return t
}

func headers(userID string) http.Header {
	return http.Header{
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer " + tokenFor(userID)},
	}
}

func postJSON(url, userID string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header = headers(userID)
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating groups...")

	for g := 1; g <= groupsCount; g++ {
		groupID := fmt.Sprintf("group-%02d", g)
		ownerID := fmt.Sprintf("owner-%02d", g)

		status, err := postJSON(targetHost+"/groups/create", ownerID, GroupCreateRequest{
			GroupID:          groupID,
			Name:             fmt.Sprintf("Study group %d", g),
			Capacity:         groupCapacity,
			RequiresApproval: true,
		})
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN groups/create returned %d\n", status)
		}

		groups = append(groups, groupID)
		owners[groupID] = ownerID
	}

	for u := 1; u <= usersCount; u++ {
		users = append(users, fmt.Sprintf("u-%03d", u))
	}

	// Токены выпускаются заранее, таргетер вызывается из нескольких горутин
	for _, uid := range users {
		tokenFor(uid)
	}

	log.Printf("Seed completed: groups=%d users=%d\n", len(groups), len(users))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		groupID := groups[rand.Intn(len(groups))]
		userID := users[rand.Intn(len(users))]

		// 10% GET groups/stats
		if r < 0.10 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/groups/stats?group_id=%s", targetHost, groupID)
			t.Body = nil
			t.Header = headers(owners[groupID])
			return nil
		}

		// 30% GET groups/get
		if r < 0.40 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/groups/get?group_id=%s", targetHost, groupID)
			t.Body = nil
			t.Header = headers(owners[groupID])
			return nil
		}

		// 35% POST groups/join
		if r < 0.75 {
			body, _ := json.Marshal(map[string]string{"group_id": groupID})
			t.Method = http.MethodPost
			t.URL = targetHost + "/groups/join"
			t.Body = body
			t.Header = headers(userID)
			return nil
		}

		// 20% approve: борьба за последние места в группе
		if r < 0.95 {
			body, _ := json.Marshal(MemberRef{GroupID: groupID, UserID: userID})
			t.Method = http.MethodPost
			t.URL = targetHost + "/groups/members/approve"
			t.Body = body
			t.Header = headers(owners[groupID])
			return nil
		}

		// 5% leave
		counter.Add(1)
		body, _ := json.Marshal(map[string]string{"group_id": groupID})
		t.Method = http.MethodPost
		t.URL = targetHost + "/groups/leave"
		t.Body = body
		t.Header = headers(userID)
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Leave requests: %d\n", counter.Load())
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
