// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/gorilla/websocket"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "websocket"))

const subscribeNewHeadsRequest = `{"jsonrpc":"2.0","method":"chain_subscribeNewHeads","params":[],"id":1}`

// SubscribeNewHeads subscribes to the new block headers of the node
// at the websocket endpoint given. Headers are sent on the returned
// headers channel until the context is canceled or the connection fails,
// in which case the error is sent on the errors channel. Both channels
// are closed once the subscription ends.
func SubscribeNewHeads(ctx context.Context, endpoint string) (
	headers <-chan Header, errs <-chan error, err error) {
	connection, response, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot dial %s: %w", endpoint, err)
	}
	_ = response.Body.Close()

	err = connection.WriteMessage(websocket.TextMessage, []byte(subscribeNewHeadsRequest))
	if err != nil {
		_ = connection.Close()
		return nil, nil, fmt.Errorf("cannot send subscription request: %w", err)
	}

	_, message, err := connection.ReadMessage()
	if err != nil {
		_ = connection.Close()
		return nil, nil, fmt.Errorf("cannot read subscription response: %w", err)
	}

	var subscriptionID string
	err = Decode(message, &subscriptionID)
	if err != nil {
		_ = connection.Close()
		return nil, nil, fmt.Errorf("cannot subscribe: %w", err)
	}
	logger.Debugf("subscribed to new heads with id %s", subscriptionID)

	headersCh := make(chan Header)
	errCh := make(chan error, 1)

	go func() {
		<-ctx.Done()
		_ = connection.Close()
	}()

	go readHeaders(ctx, connection, headersCh, errCh)

	return headersCh, errCh, nil
}

func readHeaders(ctx context.Context, connection *websocket.Conn,
	headers chan<- Header, errs chan<- error) {
	defer close(errs)
	defer close(headers)

	for {
		_, message, err := connection.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				errs <- fmt.Errorf("cannot read message: %w", err)
			}
			return
		}

		var notification Notification
		err = Decode(message, &notification)
		if err != nil {
			errs <- err
			return
		}

		var header Header
		decoder := json.NewDecoder(bytes.NewReader(notification.Result))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&header)
		if err != nil {
			errs <- fmt.Errorf("cannot decode header: %w", err)
			return
		}

		select {
		case headers <- header:
		case <-ctx.Done():
			return
		}
	}
}
