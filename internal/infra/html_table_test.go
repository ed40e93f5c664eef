package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableToCSV(t *testing.T) {
	t.Run("最初のtableのセルをCSVに復元する", func(t *testing.T) {
		html := `<html><body>
			<table>
				<tr><td>company</td><td>companyDomain</td></tr>
				<tr><td>株式会社Acme</td><td>acme</td></tr>
			</table>
		</body></html>`

		csvText, err := TableToCSV(html)

		require.NoError(t, err)
		assert.Equal(t, "company,companyDomain\n株式会社Acme,acme\n", csvText)
	})

	t.Run("pubhtmlの行番号th列は読み飛ばす", func(t *testing.T) {
		html := `<table>
			<tr><th>1</th><td>company</td><td>order</td></tr>
			<tr><th>2</th><td>Acme</td><td>1</td></tr>
		</table>`

		csvText, err := TableToCSV(html)

		require.NoError(t, err)
		assert.Equal(t, "company,order\nAcme,1\n", csvText)
	})

	t.Run("thだけの行は出力しない", func(t *testing.T) {
		html := `<table>
			<tr><th>見出し</th></tr>
			<tr><td>Acme</td></tr>
		</table>`

		csvText, err := TableToCSV(html)

		require.NoError(t, err)
		assert.Equal(t, "Acme\n", csvText)
	})

	t.Run("カンマを含むセルは引用符付きになる", func(t *testing.T) {
		html := `<table><tr><td>東京, 大阪</td><td>1</td></tr></table>`

		csvText, err := TableToCSV(html)

		require.NoError(t, err)
		assert.Equal(t, "\"東京, 大阪\",1\n", csvText)
	})

	t.Run("table要素がなければエラー", func(t *testing.T) {
		_, err := TableToCSV("<html><body><p>移転しました</p></body></html>")

		assert.Error(t, err)
	})
}
