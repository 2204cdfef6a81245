package clients

import "time"

const (
	EMOTION_PREDICT_ENDPOINT = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	EMOTION_MODEL_HEADER     = "grpc-metadata-mm-model-id"
	EMOTION_MODEL_ID         = "emotion_aggregated-workflow_lang_en_stock"
	EMOTION_TIMEOUT          = 10 * time.Second
	USER_AGENT               = "emotion-detector-client/1.0 (+https://github.com/spacesedan/emotion-detector)"
)
