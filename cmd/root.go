package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
var rootCmd = &cobra.Command{
	Use:   "go-jobfeed",
	Short: "スプレッドシートの求人フィードを取り込み・正規化するツールです。",
	Long: `go-jobfeedは、ウェブに公開されたスプレッドシートの会社フィードと
会社ごとの求人シートを取得・正規化し、掲載ルールを適用した
統合ビューを提供します。CSVへのエクスポートとJSON APIの配信に対応します。`,
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
