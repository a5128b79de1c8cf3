package app

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"gigconnect_client/internal/chat/domain"
	"gigconnect_client/internal/chat/repository"
	"gigconnect_client/pkg/httpclient"
	testtool "gigconnect_client/pkg/test_tool"
	"gigconnect_client/pkg/token"

	"github.com/stretchr/testify/assert"
)

// **測試用的 fake backend**
var backend *testtool.FakeBackend

func init() {
	var err error
	backend, err = testtool.StartFakeBackend()
	if err != nil {
		log.Fatalf("❌ Failed to start fake backend: %v", err)
	}
	fmt.Println("✅ Fake backend started at", backend.URL)
}

func dialView(t *testing.T, selfID, otherID string, handlers Handlers) *ConversationView {
	t.Helper()

	httpClient := httpclient.New(backend.URL, 5*time.Second)
	httpClient.SetTokenSource(func() string { return selfID })

	socket := repository.NewWebsocketSocket(backend.WSURL, repository.Connection{
		RetryCount:    3,
		RetryInterval: 100 * time.Millisecond,
	})

	view, err := OpenView(context.Background(), ViewDeps{
		MsgRepo:  repository.NewRESTMessageRepository(httpClient),
		Socket:   socket,
		Claims:   &token.Claims{UserID: selfID, Role: string(token.RoleBuyer)},
		Bearer:   selfID,
		Handlers: handlers,
	}, otherID, "")
	assert.NoError(t, err, "開啟對話失敗")
	t.Cleanup(view.Close)
	return view
}

// ✅ 1️⃣ 樂觀送出 → server echo → 原地確認
func TestIntegrationSendAndReconcile(t *testing.T) {
	changes := make(chan struct{}, 16)
	view := dialView(t, "alice", "bob", Handlers{
		OnChange: func() { changes <- struct{}{} },
	})

	msg, err := view.Send("hello bob")
	assert.NoError(t, err)
	assert.True(t, msg.IsTemp())

	// 等 echo 回來完成 reconcile
	deadline := time.After(3 * time.Second)
	for {
		messages := view.Client.Messages()
		if len(messages) == 1 && messages[0].Status == domain.MessageConfirmed {
			assert.False(t, messages[0].IsTemp(), "確認後的 id 必須是 server 發的")
			fmt.Println("✅ 訊息確認:", messages[0].ID)
			break
		}
		select {
		case <-changes:
		case <-deadline:
			t.Fatalf("message never confirmed: %+v", messages)
		}
	}
}

// ✅ 2️⃣ 雙向投遞與自動已讀
func TestIntegrationDeliveryAndReadReceipt(t *testing.T) {
	carolChanges := make(chan struct{}, 16)
	daveChanges := make(chan struct{}, 16)

	carol := dialView(t, "carol", "dave", Handlers{OnChange: func() { carolChanges <- struct{}{} }})
	dave := dialView(t, "dave", "carol", Handlers{OnChange: func() { daveChanges <- struct{}{} }})

	_, err := carol.Send("hi dave")
	assert.NoError(t, err)

	// dave 收到訊息
	waitFor(t, daveChanges, 3*time.Second, func() bool {
		return len(dave.Client.Messages()) == 1
	})
	fmt.Println("✅ dave 收到訊息")

	// dave 的 client 自動回已讀，carol 這邊的訊息要標上 ReadAt
	waitFor(t, carolChanges, 3*time.Second, func() bool {
		messages := carol.Client.Messages()
		return len(messages) == 1 && messages[0].ReadAt != nil
	})
	fmt.Println("✅ carol 看到已讀回條")
}

// ✅ 3️⃣ typing 轉送與過期
func TestIntegrationTypingSignal(t *testing.T) {
	typing := make(chan bool, 8)

	erin := dialView(t, "erin", "frank", Handlers{OnTyping: func(active bool) { typing <- active }})
	frank := dialView(t, "frank", "erin", Handlers{})
	_ = erin

	assert.NoError(t, frank.Client.SignalTyping("draft..."))

	select {
	case active := <-typing:
		assert.True(t, active)
		fmt.Println("✅ typing 旗標亮起")
	case <-time.After(3 * time.Second):
		t.Fatal("typing signal never arrived")
	}
}

// ✅ 4️⃣ 上傳失敗 → 不送任何事件
func TestIntegrationUploadFailureAbortsSend(t *testing.T) {
	view := dialView(t, "gina", "hank", Handlers{})

	backend.FailUploads = true
	defer func() { backend.FailUploads = false }()

	before := len(backend.Messages())
	_, err := view.SendFile(context.Background(), "cv.pdf", "application/pdf", []byte("%PDF"), "")
	assert.Error(t, err)
	assert.Len(t, backend.Messages(), before, "上傳失敗後 server 不該多出訊息")
	assert.Empty(t, view.Client.Messages())
}

// ✅ 5️⃣ gate：seller 對沒有往來的 buyer 不能開話
func TestIntegrationSellerGate(t *testing.T) {
	httpClient := httpclient.New(backend.URL, 5*time.Second)
	httpClient.SetTokenSource(func() string { return "seller-s1" })
	msgRepo := repository.NewRESTMessageRepository(httpClient)

	policy, err := NewComposerGate(msgRepo).Check(context.Background(), "seller", "buyer-never-met")
	assert.NoError(t, err)
	assert.False(t, policy.CanCompose)
	assert.Equal(t, SellerGateNotice, policy.Notice)
	fmt.Println("✅ composer 已被 gate 關閉")
}

func waitFor(t *testing.T, changes <-chan struct{}, timeout time.Duration, done func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		if done() {
			return
		}
		select {
		case <-changes:
		case <-deadline:
			t.Fatal("condition not reached within timeout")
		}
	}
}
