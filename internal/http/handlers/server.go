package handlers

import "github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"

var upstream vigilio.Upstream

func SetUpstream(u vigilio.Upstream) {
	upstream = u
}
