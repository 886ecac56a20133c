package cli

import (
	"context"
	"fmt"
	"os"
)

// Chat opens a conversation with the travel assistant. Each line is sent to
// the server under the current conversation id; "/new" clears the history by
// starting a fresh conversation, and an empty line or "/exit" leaves the
// chat. The conversation id survives leaving and re-entering the chat.
func (a *App) Chat(ctx context.Context) error {
	fmt.Println(a.lang.T("chatbot_title"))
	fmt.Println(a.lang.T("chatbot_greeting"))

	for {
		message, err := getSimpleText(a.reader, a.lang.T("type_message"), os.Stdout)
		if err != nil {
			return err
		}
		if message == "" || message == "/exit" {
			return nil
		}
		if message == "/new" {
			a.chat.Reset()
			fmt.Println(a.lang.T("clear_chat"))
			continue
		}

		reply, err := a.chat.Send(ctx, message)
		if err != nil {
			fmt.Println(a.errMsg(err, "error"))
			continue
		}
		fmt.Println(reply)
	}
}
