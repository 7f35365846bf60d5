package logger

const PlayStartMsg = "對戰開始 session: %s, world: %.0fx%.0f"
const PlayStopMsg = "對戰結束 session: %s, 比分 %d:%d"

const PointScoredMsg = "玩家 %d 得分！球越過 %s 邊界, 比分 %d:%d"
const PaddleHitMsg = "球拍 %d 擊中球 frame: %d"

const BallServeMsg = "發球！方向: %s"
const BallResetMsg = "球回到起始位置 (%.0f, %.0f)"

const ConfigLoadedMsg = "讀取設定檔 env: %s, dir: %s"
const ScreenInitFailedMsg = "畫面初始化失敗: %v"
const SoundInitFailedMsg = "音效初始化失敗, 改為靜音: %v"
