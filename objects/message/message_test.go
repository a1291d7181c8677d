// SPDX-License-Identifier: GPL-3.0-or-later

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/epp"
)

func TestSerializePollReq(t *testing.T) {
	out, err := epp.Serialize(NewPollReq(), epp.NoExt{}, "ABC-1")
	require.NoError(t, err)
	assert.Contains(t, string(out), `<poll op="req">`)
}

func TestSerializePollAck(t *testing.T) {
	out, err := epp.Serialize(NewPollAck("12345"), epp.NoExt{}, "ABC-1")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `op="ack"`)
	assert.Contains(t, s, `msgID="12345"`)
}

func TestParseMsgQFromPollReply(t *testing.T) {
	reply := []byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1301"><msg>Command completed successfully; ack to dequeue</msg></result>
    <msgQ count="4" id="12345">
      <qDate>2021-07-23T19:32:18.0Z</qDate>
      <msg>Transfer requested.</msg>
    </msgQ>
    <trID><clTRID>ABC-1</clTRID><svTRID>SV-1</svTRID></trID>
  </response>
</epp>`)

	msgQ, err := epp.ParseMsgQ(reply)
	require.NoError(t, err)
	require.NotNil(t, msgQ)
	assert.Equal(t, 4, msgQ.Count)
	assert.Equal(t, "12345", msgQ.ID)
	assert.Equal(t, "Transfer requested.", msgQ.Msg)
}

func TestParseMsgQAbsentWhenQueueEmpty(t *testing.T) {
	reply := []byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1300"><msg>Command completed successfully; no messages</msg></result>
    <trID><clTRID>ABC-1</clTRID><svTRID>SV-1</svTRID></trID>
  </response>
</epp>`)

	msgQ, err := epp.ParseMsgQ(reply)
	require.NoError(t, err)
	assert.Nil(t, msgQ)
}
